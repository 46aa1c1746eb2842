package gpio

import "testing"

const testBase uint32 = 0x48000000

func newTestPorts(t *testing.T) *Ports {
	t.Helper()
	a, err := New(Config{Port: PortA})
	if err != nil {
		t.Fatalf("New(A) failed: %v", err)
	}
	b, err := New(Config{Port: PortB})
	if err != nil {
		t.Fatalf("New(B) failed: %v", err)
	}
	return NewPorts(testBase, a, b)
}

func TestPortsDecode(t *testing.T) {
	p := newTestPorts(t)

	// PUPDR reset defaults distinguish the two banks.
	got, ok := p.Read(testBase + RegPUPDR)
	if !ok || got != 0x64000000 {
		t.Errorf("port A PUPDR = %#x, ok=%v; want 0x64000000", got, ok)
	}
	got, ok = p.Read(testBase + PeripheralSize + RegPUPDR)
	if !ok || got != 0x00000100 {
		t.Errorf("port B PUPDR = %#x, ok=%v; want 0x100", got, ok)
	}
}

func TestPortsWriteIsolation(t *testing.T) {
	p := newTestPorts(t)

	if !p.Write(testBase+PeripheralSize+RegODR, 0xFF) {
		t.Fatalf("write to port B window not accepted")
	}

	if got, _ := p.Read(testBase + RegODR); got != 0 {
		t.Errorf("port A ODR = %#x after port B write, want 0", got)
	}
	if got, _ := p.Read(testBase + PeripheralSize + RegODR); got != 0xFF {
		t.Errorf("port B ODR = %#x, want 0xFF", got)
	}
}

func TestPortsUnmappedAddress(t *testing.T) {
	p := newTestPorts(t)

	if _, ok := p.Read(testBase - 4); ok {
		t.Errorf("read below base reported ok")
	}
	if _, ok := p.Read(testBase + 2*PeripheralSize); ok {
		t.Errorf("read beyond last bank reported ok")
	}
	if p.Write(testBase+2*PeripheralSize, 1) {
		t.Errorf("write beyond last bank accepted")
	}
}

func TestPortsBankLookup(t *testing.T) {
	p := newTestPorts(t)

	if b := p.Bank(PortB); b == nil || b.Port() != PortB {
		t.Errorf("Bank(PortB) = %v", b)
	}
	if b := p.Bank(PortK); b != nil {
		t.Errorf("Bank(PortK) = %v, want nil", b)
	}
}
