package gpio

import "fmt"

// DiagnosticSink receives the advisory notifications a bank raises while
// servicing accesses. Both conditions are non-fatal: the access or
// resolution pass completes either way.
type DiagnosticSink interface {
	// BadAccess reports a read or write at an offset outside the
	// register map. The access itself is a no-op.
	BadAccess(kind AccessKind, offset uint32)

	// ShortCircuit reports a pin that is simultaneously driven
	// externally and configured as an output. The external level wins.
	ShortCircuit(pin int)
}

// Config carries the construction-time parameters of a bank.
type Config struct {
	// Port selects the bank's reset defaults.
	Port Port

	// Pins is the number of modelled pins, 1..NumPins. Zero means
	// NumPins.
	Pins int

	// OutputChanged, when non-nil, is called whenever the resolved
	// level of an output-mode pin changes. Input-mode level changes
	// update IDR silently.
	OutputChanged func(pin int, level bool)

	// Diag, when non-nil, receives bad-access and short-circuit
	// notifications.
	Diag DiagnosticSink
}

// Bank is one GPIO port peripheral: a register file over up to 16 pins
// plus the external drive state. The zero value is not usable; construct
// with New.
type Bank struct {
	moder   uint32
	otyper  uint32
	ospeedr uint32
	pupdr   uint32
	idr     uint32 // resolved pin levels, updated only by resolve
	odr     uint32 // requested output levels
	lckr    uint32
	afrl    uint32
	afrh    uint32

	// External drive state. inMask marks pins currently asserted from
	// outside; in holds the asserted level and is meaningful only where
	// the mask bit is set.
	in     uint32
	inMask uint32

	port  Port
	npins int

	outputChanged func(pin int, level bool)
	diag          DiagnosticSink
}

// New builds a bank and applies its cold-start reset.
func New(cfg Config) (*Bank, error) {
	if cfg.Pins == 0 {
		cfg.Pins = NumPins
	}
	if cfg.Pins < 1 || cfg.Pins > NumPins {
		return nil, fmt.Errorf("gpio: pin count %d out of range 1..%d", cfg.Pins, NumPins)
	}
	b := &Bank{
		port:          cfg.Port,
		npins:         cfg.Pins,
		outputChanged: cfg.OutputChanged,
		diag:          cfg.Diag,
	}
	b.Reset()
	return b, nil
}

// Port returns the port identity the bank was built with.
func (b *Bank) Port() Port { return b.port }

// Pins returns the number of modelled pins.
func (b *Bank) Pins() int { return b.npins }

// Reset returns the register file to its power-on state and releases
// every external drive. OSPEEDR and PUPDR take port-specific defaults on
// ports A and B; ODR and the remaining registers come up zero, and MODER
// is left untouched. Reset does not run a resolution pass: IDR stays at
// zero until the next write or external signal change.
func (b *Bank) Reset() {
	switch b.port {
	case PortA:
		b.ospeedr = 0
		b.pupdr = 0x64000000
	case PortB:
		b.ospeedr = 0x000000C0
		b.pupdr = 0x00000100
	default:
		b.ospeedr = 0
		b.pupdr = 0
	}

	b.otyper = 0
	b.idr = 0
	b.odr = 0
	b.lckr = 0
	b.afrl = 0
	b.afrh = 0

	b.in = 0
	b.inMask = 0
}

func (b *Bank) badAccess(kind AccessKind, offset uint32) {
	if b.diag != nil {
		b.diag.BadAccess(kind, offset)
	}
}

func (b *Bank) shortCircuit(pin int) {
	if b.diag != nil {
		b.diag.ShortCircuit(pin)
	}
}
