package gpio

import (
	"fmt"
	"strings"
)

// Register byte offsets within a port's peripheral window. Registers are
// 32 bits wide and accessed as whole words; narrower or wider accesses
// are a caller contract, not enforced here.
const (
	RegMODER   uint32 = 0x000 // mode, 2 bits per pin
	RegOTYPER  uint32 = 0x004 // output type (stored, not modelled)
	RegOSPEEDR uint32 = 0x008 // output speed (stored, not modelled)
	RegPUPDR   uint32 = 0x00C // pull-up/pull-down, 2 bits per pin
	RegIDR     uint32 = 0x010 // input data, read-only
	RegODR     uint32 = 0x014 // output data
	RegBSRR    uint32 = 0x018 // bit set/reset, write-only
	RegLCKR    uint32 = 0x01C // configuration lock (stored, not enforced)
	RegAFRL    uint32 = 0x020 // alternate function low (stored, not modelled)
	RegAFRH    uint32 = 0x024 // alternate function high (stored, not modelled)
)

const (
	// NumPins is the width of a bank and the hard ceiling on Config.Pins.
	NumPins = 16

	// NumRegs is the number of addressable registers in the window.
	NumRegs = 10

	// PeripheralSize is the size of one port's address window in bytes.
	// Offsets beyond the ten listed registers are invalid but still fall
	// inside this window.
	PeripheralSize uint32 = 0x400
)

// Port identifies a GPIO port. The port selects the bank's reset
// defaults; ports A and B have non-zero OSPEEDR/PUPDR reset values.
type Port int

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH
	PortI
	PortJ
	PortK
)

func (p Port) String() string {
	if p < PortA || p > PortK {
		return fmt.Sprintf("Port(%d)", int(p))
	}
	return string('A' + rune(p))
}

// ParsePort converts a single port letter ("A".."K", either case) to a
// Port value.
func ParsePort(s string) (Port, error) {
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'k' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'K' {
			return Port(c - 'A'), nil
		}
	}
	return 0, fmt.Errorf("gpio: unknown port %q", s)
}

// Mode is the 2-bit per-pin field of the MODER register.
type Mode uint8

const (
	ModeInput Mode = iota
	ModeOutput
	ModeAltFunc
	ModeAnalog
)

func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeOutput:
		return "output"
	case ModeAltFunc:
		return "alternate"
	case ModeAnalog:
		return "analog"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Pull is the 2-bit per-pin field of the PUPDR register. The value 3 is
// reserved by the hardware; it resolves like PullDown.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullNone:
		return "none"
	case PullUp:
		return "pull-up"
	case PullDown:
		return "pull-down"
	}
	return fmt.Sprintf("Pull(%d)", uint8(p))
}

// AccessKind distinguishes reads from writes in bad-access diagnostics.
type AccessKind int

const (
	AccessRead AccessKind = iota
	AccessWrite
)

func (k AccessKind) String() string {
	if k == AccessRead {
		return "read"
	}
	return "write"
}

// RegName returns the conventional name of the register at offset, or
// the empty string if offset is not a register in the map.
func RegName(offset uint32) string {
	switch offset {
	case RegMODER:
		return "MODER"
	case RegOTYPER:
		return "OTYPER"
	case RegOSPEEDR:
		return "OSPEEDR"
	case RegPUPDR:
		return "PUPDR"
	case RegIDR:
		return "IDR"
	case RegODR:
		return "ODR"
	case RegBSRR:
		return "BSRR"
	case RegLCKR:
		return "LCKR"
	case RegAFRL:
		return "AFRL"
	case RegAFRH:
		return "AFRH"
	}
	return ""
}

// RegOffset is the inverse of RegName. Names are matched
// case-insensitively.
func RegOffset(name string) (uint32, error) {
	for off := uint32(0); off < uint32(NumRegs)*4; off += 4 {
		if strings.EqualFold(RegName(off), name) {
			return off, nil
		}
	}
	return 0, fmt.Errorf("gpio: unknown register %q", name)
}
