package gpio

import (
	"fmt"
	"io"
)

// LogSink is a DiagnosticSink that writes one line per notification to
// W. It is the default sink for tools that just want diagnostics on a
// stream.
type LogSink struct {
	W io.Writer
}

func (s LogSink) BadAccess(kind AccessKind, offset uint32) {
	fmt.Fprintf(s.W, "gpio: bad %s offset %#03x\n", kind, offset)
}

func (s LogSink) ShortCircuit(pin int) {
	fmt.Fprintf(s.W, "gpio: pin %d short-circuited\n", pin)
}
