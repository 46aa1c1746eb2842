package gpio

import "fmt"

// Released is a convenient argument for SetExternal: any negative value
// releases the pin.
const Released = -1

// SetExternal asserts or releases an external drive on pin, then
// re-resolves all pins. A negative value releases the drive and lets
// the pin float; otherwise the pin is driven high when value is
// non-zero and low when it is zero. Releasing leaves the recorded
// level stale, which is harmless: it is ignored while the mask bit is
// clear.
//
// SetExternal panics when pin is outside the bank's range. An
// out-of-range index is a wiring bug in the surrounding system, not
// guest-visible behaviour, so it fails loudly rather than clamping.
func (b *Bank) SetExternal(pin, value int) {
	if pin < 0 || pin >= b.npins {
		panic(fmt.Sprintf("gpio: pin %d out of range 0..%d", pin, b.npins-1))
	}

	b.inMask = setBit(b.inMask, pin, value >= 0)
	if value >= 0 {
		b.in = setBit(b.in, pin, value != 0)
	}

	b.resolve()
}
