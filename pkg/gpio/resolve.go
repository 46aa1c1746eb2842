package gpio

// resolve recomputes the resolved level of every pin and reports output
// edges. It runs after every register write and every external signal
// change — always over the full bank, because MODER and PUPDR affect
// all pins at once.
//
// Per pin, in priority order: an external drive supplies the level
// outright (a short circuit when the pin is also in output mode — the
// conflict is reported, not arbitrated); an undriven output pin takes
// its ODR bit; a floating pin reads high only under a pull-up, with
// pull-down and no-pull both reading low.
func (b *Bank) resolve() {
	for i := 0; i < b.npins; i++ {
		prev := bit(b.idr, i)
		out := bit(b.odr, i)
		ext := bit(b.in, i)
		driven := bit(b.inMask, i)
		mode := b.PinMode(i)

		if mode == ModeOutput && driven {
			b.shortCircuit(i)
		}

		var level bool
		switch {
		case driven:
			level = ext
		case mode == ModeOutput:
			level = out
		default:
			level = b.PinPull(i) == PullUp
		}

		b.idr = setBit(b.idr, i, level)

		if mode == ModeOutput && level != prev && b.outputChanged != nil {
			b.outputChanged(i, level)
		}
	}
}
