package pinvec

import (
	"strings"
	"testing"

	"github.com/DIE-SILVASE/qemu-new/pkg/gpio"
)

func runString(t *testing.T, input string) *Result {
	t.Helper()
	p := newTestParser(t)
	file, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	res, err := Run(file)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return res
}

func TestRunOutputScenario(t *testing.T) {
	res := runString(t, `
write MODER 0x00000001
write BSRR 0x00000001
expect ODR 0x1
expect IDR 0x1
expect output 0 high
`)

	if res.Failed() {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
	if len(res.Events) != 1 {
		t.Errorf("got %d events, want 1", len(res.Events))
	}
}

// A file without a port statement runs on a pull-free bank: the first
// resolution pass raises no IDR bits of its own.
func TestRunDefaultPortIsPullFree(t *testing.T) {
	res := runString(t, `
write ODR 0x0
expect IDR 0x0
write MODER 0x1
write BSRR 0x1
expect IDR 0x1
`)
	if res.Failed() {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
	if res.Bank.Port() != gpio.PortC {
		t.Errorf("default port = %v, want %v", res.Bank.Port(), gpio.PortC)
	}
}

func TestRunPortDefaults(t *testing.T) {
	res := runString(t, `
port A
expect PUPDR 0x64000000
expect MODER 0x0
expect ODR 0x0
expect IDR 0x0
`)
	if res.Failed() {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
}

func TestRunExternalDrive(t *testing.T) {
	res := runString(t, `
write MODER 0x1
write ODR 0x1
drive 0 low
expect IDR 0x0
release 0
expect IDR 0x1
`)
	if res.Failed() {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
	if len(res.Shorts) != 1 || res.Shorts[0] != 0 {
		t.Errorf("shorts = %v, want [0]", res.Shorts)
	}
}

func TestRunRecordsReads(t *testing.T) {
	res := runString(t, "write ODR 0xAB\nread ODR")

	if len(res.Reads) != 1 {
		t.Fatalf("got %d reads, want 1", len(res.Reads))
	}
	if res.Reads[0].Reg != "ODR" || res.Reads[0].Value != 0xAB {
		t.Errorf("read = %+v, want ODR/0xAB", res.Reads[0])
	}
}

func TestRunExpectFailure(t *testing.T) {
	res := runString(t, "write ODR 0x1\nexpect ODR 0x2\nexpect output 5 high")

	if !res.Failed() {
		t.Fatalf("run did not record failures")
	}
	if len(res.Failures) != 2 {
		t.Fatalf("got %d failures, want 2: %v", len(res.Failures), res.Failures)
	}
	if !strings.Contains(res.Failures[0], "ODR") {
		t.Errorf("failure %q does not name the register", res.Failures[0])
	}
	if !strings.Contains(res.Failures[1], "pin 5") {
		t.Errorf("failure %q does not name the pin", res.Failures[1])
	}
}

func TestRunErrors(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name  string
		input string
	}{
		{"port after action", "write ODR 0x1\nport B"},
		{"pins after action", "reset\npins 4"},
		{"unknown register", "write NOPE 0x1"},
		{"bad pin count", "pins 17\nreset"},
		{"drive out of range", "pins 4\ndrive 4 high"},
		{"release out of range", "release 16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := p.ParseString(tt.input)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if _, err := Run(file); err == nil {
				t.Errorf("Run did not fail")
			}
		})
	}
}

func TestRunBadAccessRecorded(t *testing.T) {
	// BSRR reads as zero and is not a bad access; only unmapped
	// offsets are. The vector language cannot name an unmapped
	// register, so diagnostics stay empty here.
	res := runString(t, "read BSRR\nexpect BSRR 0x0")

	if res.Failed() {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
	if len(res.BadAccesses) != 0 {
		t.Errorf("got %d bad accesses, want 0", len(res.BadAccesses))
	}
}
