package gpio

// Read returns the current value of the register at offset. For BSRR,
// which is write-only, the value is always zero. ok is false for
// offsets outside the register map; those raise a bad-access diagnostic
// and read as zero.
func (b *Bank) Read(offset uint32) (value uint32, ok bool) {
	switch offset {
	case RegMODER:
		return b.moder, true
	case RegOTYPER:
		return b.otyper, true
	case RegOSPEEDR:
		return b.ospeedr, true
	case RegPUPDR:
		return b.pupdr, true
	case RegIDR:
		return b.idr, true
	case RegODR:
		return b.odr, true
	case RegBSRR:
		return 0, true
	case RegLCKR:
		return b.lckr, true
	case RegAFRL:
		return b.afrl, true
	case RegAFRH:
		return b.afrh, true
	}
	b.badAccess(AccessRead, offset)
	return 0, false
}

// Write stores value in the register at offset and then re-resolves all
// pins. The backing field is replaced wholesale; there is no partial
// merge. Writes to IDR are accepted and discarded. Writes outside the
// register map raise a bad-access diagnostic and change nothing. Either
// way the resolution pass runs exactly once before Write returns, so
// IDR is always consistent with the rest of the register file.
func (b *Bank) Write(offset, value uint32) {
	switch offset {
	case RegMODER:
		b.moder = value
	case RegOTYPER:
		b.otyper = value
	case RegOSPEEDR:
		b.ospeedr = value
	case RegPUPDR:
		b.pupdr = value
	case RegIDR:
		// read-only
	case RegODR:
		b.odr = value
	case RegBSRR:
		// Low half sets, high half resets. Clearing first gives set
		// requests priority when both target the same pin.
		b.odr &^= value >> 16 & 0xFFFF
		b.odr |= value & 0xFFFF
	case RegLCKR:
		b.lckr = value
	case RegAFRL:
		b.afrl = value
	case RegAFRH:
		b.afrh = value
	default:
		b.badAccess(AccessWrite, offset)
	}

	b.resolve()
}
