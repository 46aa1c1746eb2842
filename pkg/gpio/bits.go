package gpio

// bit returns bit i of v as a bool.
func bit(v uint32, i int) bool {
	return v>>uint(i)&1 != 0
}

// setBit returns v with bit i set to on.
func setBit(v uint32, i int, on bool) uint32 {
	if on {
		return v | 1<<uint(i)
	}
	return v &^ (1 << uint(i))
}

// field2 returns the 2-bit field for pin i of a packed register.
func field2(v uint32, i int) uint32 {
	return v >> uint(i*2) & 3
}

// PinMode decodes the MODER field for a single pin.
func (b *Bank) PinMode(pin int) Mode {
	return Mode(field2(b.moder, pin))
}

// PinPull decodes the PUPDR field for a single pin.
func (b *Bank) PinPull(pin int) Pull {
	return Pull(field2(b.pupdr, pin))
}
