package gpio

import "testing"

func TestSetExternalTriState(t *testing.T) {
	b, _ := newTestBank(t, PortC)

	b.SetExternal(2, 1)
	if got, _ := b.Read(RegIDR); got != 1<<2 {
		t.Fatalf("IDR = %#x after drive high, want %#x", got, uint32(1<<2))
	}

	b.SetExternal(2, 0)
	if got, _ := b.Read(RegIDR); got != 0 {
		t.Fatalf("IDR = %#x after drive low, want 0", got)
	}

	b.SetExternal(2, Released)
	if got, _ := b.Read(RegIDR); got != 0 {
		t.Errorf("IDR = %#x after release, want 0 (floating, no pull)", got)
	}
}

// After a release the recorded drive level goes stale; it must not leak
// into resolution until the pin is driven again.
func TestReleasedDriveLevelIgnored(t *testing.T) {
	b, _ := newTestBank(t, PortC)

	b.SetExternal(0, 1)
	b.SetExternal(0, Released)

	if got, _ := b.Read(RegIDR); got&1 != 0 {
		t.Errorf("IDR bit 0 = 1 while released, want 0")
	}

	// The pull configuration takes over once the pin floats.
	b.Write(RegPUPDR, 0x1)
	if got, _ := b.Read(RegIDR); got&1 != 1 {
		t.Errorf("IDR bit 0 = 0 with pull-up, want 1")
	}
}

func TestAnyNegativeReleases(t *testing.T) {
	b, _ := newTestBank(t, PortC)

	b.SetExternal(0, 1)
	b.SetExternal(0, -42)

	if got, _ := b.Read(RegIDR); got&1 != 0 {
		t.Errorf("IDR bit 0 = 1 after release, want 0")
	}
}

func TestNonZeroDrivesHigh(t *testing.T) {
	b, _ := newTestBank(t, PortC)

	b.SetExternal(5, 7)
	if got, _ := b.Read(RegIDR); got != 1<<5 {
		t.Errorf("IDR = %#x, want %#x", got, uint32(1<<5))
	}
}

func TestSetExternalPanicsOutOfRange(t *testing.T) {
	b, err := New(Config{Port: PortC, Pins: 8})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, pin := range []int{-1, 8, 16} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetExternal(%d, 1) did not panic", pin)
				}
			}()
			b.SetExternal(pin, 1)
		}()
	}
}

// Driving an output pin and then releasing it hands the level back to
// ODR, with an edge in each direction.
func TestDriveThenReleaseOutputPin(t *testing.T) {
	b, rec := newTestBank(t, PortC)

	b.Write(RegMODER, 0x1)
	b.Write(RegODR, 0x1)

	b.SetExternal(0, 0)
	b.SetExternal(0, Released)

	want := []outputEvent{{0, true}, {0, false}, {0, true}}
	if len(rec.outputs) != len(want) {
		t.Fatalf("got %d output events, want %d", len(rec.outputs), len(want))
	}
	for i, ev := range want {
		if rec.outputs[i] != ev {
			t.Errorf("event %d = %+v, want %+v", i, rec.outputs[i], ev)
		}
	}
	if len(rec.shorts) != 1 {
		t.Errorf("got %d short-circuit diagnostics, want 1", len(rec.shorts))
	}
}
