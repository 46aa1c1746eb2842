package pinvec

import (
	"fmt"

	"github.com/DIE-SILVASE/qemu-new/pkg/gpio"
)

// Event is one recorded output-changed notification.
type Event struct {
	Pin   int
	Level bool
}

// ReadValue is the outcome of a read statement.
type ReadValue struct {
	Line  int
	Reg   string
	Value uint32
}

// BadAccess is one recorded bad-access diagnostic.
type BadAccess struct {
	Kind   gpio.AccessKind
	Offset uint32
}

// Result collects everything a run produced: read values, output
// events, diagnostics, and expectation failures. A run with failures is
// not an error; errors are reserved for vector files that cannot be
// executed at all.
type Result struct {
	Reads       []ReadValue
	Events      []Event
	Shorts      []int
	BadAccesses []BadAccess
	Failures    []string

	// Bank is the bank state at the end of the run, or nil when the
	// file contained no action statements.
	Bank *gpio.Bank
}

// Failed reports whether any expect statement did not hold.
func (r *Result) Failed() bool { return len(r.Failures) > 0 }

func (r *Result) BadAccess(kind gpio.AccessKind, offset uint32) {
	r.BadAccesses = append(r.BadAccesses, BadAccess{Kind: kind, Offset: offset})
}

func (r *Result) ShortCircuit(pin int) {
	r.Shorts = append(r.Shorts, pin)
}

// Run executes a parsed vector file against a fresh bank. The port and
// pins statements configure the bank and must precede the first action;
// the bank is built, and cold-reset, when the first action statement is
// reached.
//
// A file without a port statement runs on port C, which has no pull-up
// reset defaults: IDR then reflects only the script's own actions.
// Ports A and B bring their hardware reset pulls with them and must be
// asked for explicitly.
//
// An "expect output" statement matches any output-changed event
// recorded since the run began.
func Run(file *File) (*Result, error) {
	res := &Result{}
	cfg := gpio.Config{Port: gpio.PortC, Diag: res}
	cfg.OutputChanged = func(pin int, level bool) {
		res.Events = append(res.Events, Event{Pin: pin, Level: level})
	}

	var bank *gpio.Bank

	ensure := func() error {
		if bank != nil {
			return nil
		}
		b, err := gpio.New(cfg)
		if err != nil {
			return fmt.Errorf("pinvec: %w", err)
		}
		bank = b
		res.Bank = b
		return nil
	}

	checkPin := func(st *Statement, pin int) error {
		if pin < 0 || pin >= bank.Pins() {
			return fmt.Errorf("pinvec: line %d: pin %d out of range 0..%d", st.Pos.Line, pin, bank.Pins()-1)
		}
		return nil
	}

	for _, st := range file.Statements {
		switch {
		case st.Port != nil:
			if bank != nil {
				return nil, fmt.Errorf("pinvec: line %d: port must precede the first action", st.Pos.Line)
			}
			port, err := gpio.ParsePort(*st.Port)
			if err != nil {
				return nil, fmt.Errorf("pinvec: line %d: %w", st.Pos.Line, err)
			}
			cfg.Port = port

		case st.Pins != nil:
			if bank != nil {
				return nil, fmt.Errorf("pinvec: line %d: pins must precede the first action", st.Pos.Line)
			}
			cfg.Pins = *st.Pins

		case st.Reset:
			if err := ensure(); err != nil {
				return nil, err
			}
			bank.Reset()

		case st.Write != nil:
			if err := ensure(); err != nil {
				return nil, err
			}
			off, err := gpio.RegOffset(st.Write.Reg)
			if err != nil {
				return nil, fmt.Errorf("pinvec: line %d: %w", st.Pos.Line, err)
			}
			bank.Write(off, uint32(st.Write.Value))

		case st.Read != nil:
			if err := ensure(); err != nil {
				return nil, err
			}
			off, err := gpio.RegOffset(st.Read.Reg)
			if err != nil {
				return nil, fmt.Errorf("pinvec: line %d: %w", st.Pos.Line, err)
			}
			v, _ := bank.Read(off)
			res.Reads = append(res.Reads, ReadValue{
				Line:  st.Pos.Line,
				Reg:   gpio.RegName(off),
				Value: v,
			})

		case st.Drive != nil:
			if err := ensure(); err != nil {
				return nil, err
			}
			if err := checkPin(st, st.Drive.Pin); err != nil {
				return nil, err
			}
			level := 0
			if st.Drive.Level {
				level = 1
			}
			bank.SetExternal(st.Drive.Pin, level)

		case st.Release != nil:
			if err := ensure(); err != nil {
				return nil, err
			}
			if err := checkPin(st, *st.Release); err != nil {
				return nil, err
			}
			bank.SetExternal(*st.Release, gpio.Released)

		case st.Expect != nil:
			if err := ensure(); err != nil {
				return nil, err
			}
			if err := runExpect(bank, res, st); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("pinvec: line %d: empty statement", st.Pos.Line)
		}
	}

	return res, nil
}

func runExpect(bank *gpio.Bank, res *Result, st *Statement) error {
	if out := st.Expect.Output; out != nil {
		for _, ev := range res.Events {
			if ev.Pin == out.Pin && ev.Level == bool(out.Level) {
				return nil
			}
		}
		res.Failures = append(res.Failures,
			fmt.Sprintf("line %d: no output event for pin %d level %s",
				st.Pos.Line, out.Pin, levelName(bool(out.Level))))
		return nil
	}

	exp := st.Expect.Reg
	off, err := gpio.RegOffset(exp.Reg)
	if err != nil {
		return fmt.Errorf("pinvec: line %d: %w", st.Pos.Line, err)
	}
	got, _ := bank.Read(off)
	if got != uint32(exp.Value) {
		res.Failures = append(res.Failures,
			fmt.Sprintf("line %d: %s = %#010x, want %#010x",
				st.Pos.Line, gpio.RegName(off), got, uint32(exp.Value)))
	}
	return nil
}

func levelName(level bool) string {
	if level {
		return "high"
	}
	return "low"
}
