package gpio

import "fmt"

// SnapshotVersion identifies the Snapshot field layout.
const SnapshotVersion = 1

// Snapshot is a flat copy of a bank's architectural state: the nine
// registers plus the external drive vector and mask. It carries no
// configuration (port, pin count, callbacks); a snapshot is only valid
// for a bank configured the same way as the one it was taken from.
type Snapshot struct {
	Version int

	MODER   uint32
	OTYPER  uint32
	OSPEEDR uint32
	PUPDR   uint32
	IDR     uint32
	ODR     uint32
	LCKR    uint32
	AFRL    uint32
	AFRH    uint32

	In     uint32
	InMask uint32
}

// Snapshot captures the bank's current architectural state.
func (b *Bank) Snapshot() Snapshot {
	return Snapshot{
		Version: SnapshotVersion,
		MODER:   b.moder,
		OTYPER:  b.otyper,
		OSPEEDR: b.ospeedr,
		PUPDR:   b.pupdr,
		IDR:     b.idr,
		ODR:     b.odr,
		LCKR:    b.lckr,
		AFRL:    b.afrl,
		AFRH:    b.afrh,
		In:      b.in,
		InMask:  b.inMask,
	}
}

// Restore replaces the bank's architectural state with s. IDR is taken
// from the snapshot as-is; no resolution pass runs and no notifications
// fire, so restoring is invisible to the bank's collaborators.
func (b *Bank) Restore(s Snapshot) error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("gpio: snapshot version %d, want %d", s.Version, SnapshotVersion)
	}

	b.moder = s.MODER
	b.otyper = s.OTYPER
	b.ospeedr = s.OSPEEDR
	b.pupdr = s.PUPDR
	b.idr = s.IDR
	b.odr = s.ODR
	b.lckr = s.LCKR
	b.afrl = s.AFRL
	b.afrh = s.AFRH
	b.in = s.In
	b.inMask = s.InMask

	return nil
}
