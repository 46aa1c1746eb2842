package pinvec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// File represents a parsed pin-vector file: a flat list of statements
// executed in order by the Runner.
type File struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is one line of a vector file. Exactly one branch is set.
type Statement struct {
	Pos lexer.Position

	Port    *string `parser:"  KwPort @Ident"`
	Pins    *int    `parser:"| KwPins @Integer"`
	Reset   bool    `parser:"| @KwReset"`
	Write   *Write  `parser:"| @@"`
	Read    *Read   `parser:"| @@"`
	Drive   *Drive  `parser:"| @@"`
	Release *int    `parser:"| KwRelease @Integer"`
	Expect  *Expect `parser:"| @@"`
}

// Write stores a value into a register named by its conventional name.
// Example: write MODER 0x00000001
type Write struct {
	Reg   string `parser:"KwWrite @Ident"`
	Value Value  `parser:"@(Hex | Integer)"`
}

// Read reads a register; the runner records the value.
// Example: read IDR
type Read struct {
	Reg string `parser:"KwRead @Ident"`
}

// Drive asserts an external level on a pin.
// Example: drive 3 high
type Drive struct {
	Pin   int   `parser:"KwDrive @Integer"`
	Level Level `parser:"@(KwHigh | KwLow)"`
}

// Expect asserts either a register value or a recorded output event.
// Examples: expect ODR 0x1 / expect output 0 high
type Expect struct {
	Output *ExpectOutput `parser:"KwExpect ( @@"`
	Reg    *ExpectReg    `parser:"| @@ )"`
}

// ExpectOutput asserts that an output-changed event with the given pin
// and level has been recorded since the run began.
type ExpectOutput struct {
	Pin   int   `parser:"KwOutput @Integer"`
	Level Level `parser:"@(KwHigh | KwLow)"`
}

// ExpectReg asserts the current value of a register.
type ExpectReg struct {
	Reg   string `parser:"@Ident"`
	Value Value  `parser:"@(Hex | Integer)"`
}

// Value is a 32-bit literal, hex or decimal.
type Value uint32

// Capture implements participle's capture interface.
func (v *Value) Capture(values []string) error {
	n, err := strconv.ParseUint(values[0], 0, 32)
	if err != nil {
		return fmt.Errorf("bad value %q: %w", values[0], err)
	}
	*v = Value(n)
	return nil
}

// Level is a pin level keyword: high is true, low is false.
type Level bool

// Capture implements participle's capture interface.
func (l *Level) Capture(values []string) error {
	*l = Level(strings.EqualFold(values[0], "high"))
	return nil
}
