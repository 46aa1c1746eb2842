package gpio

// Ports decodes bus-level addresses to a row of banks mapped at
// PeripheralSize strides from a base address, in the order the banks
// were given. The banks stay fully independent; Ports adds nothing but
// the address decode.
type Ports struct {
	base  uint32
	banks []*Bank
}

// NewPorts maps banks at base, base+PeripheralSize, ... in argument
// order.
func NewPorts(base uint32, banks ...*Bank) *Ports {
	return &Ports{base: base, banks: banks}
}

// Bank returns the first mapped bank with the given port identity, or
// nil if none matches.
func (p *Ports) Bank(port Port) *Bank {
	for _, b := range p.banks {
		if b.port == port {
			return b
		}
	}
	return nil
}

// decode returns the bank owning addr and the offset within its window.
func (p *Ports) decode(addr uint32) (*Bank, uint32, bool) {
	if addr < p.base {
		return nil, 0, false
	}
	rel := addr - p.base
	idx := int(rel / PeripheralSize)
	if idx >= len(p.banks) {
		return nil, 0, false
	}
	return p.banks[idx], rel % PeripheralSize, true
}

// Read decodes addr and reads the owning bank. ok is false when addr
// falls outside every mapped window or outside the owning bank's
// register map.
func (p *Ports) Read(addr uint32) (uint32, bool) {
	b, off, ok := p.decode(addr)
	if !ok {
		return 0, false
	}
	return b.Read(off)
}

// Write decodes addr and writes the owning bank. It reports whether
// addr fell inside a mapped window; writes to unmapped addresses are
// dropped.
func (p *Ports) Write(addr, value uint32) bool {
	b, off, ok := p.decode(addr)
	if !ok {
		return false
	}
	b.Write(off, value)
	return true
}
