package sigflag

import (
	"math/bits"

	"github.com/srozzo/go-sigflag/signum"
)

// Handle watches the signals it was registered for. It is a small value:
// copies observe and clear the same bits. The zero Handle watches nothing.
//
// All methods are safe for concurrent use and never block.
type Handle struct {
	mask uintptr
	b    *Bridge
}

// Caught reports whether any of the handle's signals has been delivered
// since it was last cleared.
func (h Handle) Caught() bool {
	if h.b == nil {
		return false
	}
	h.b.flush()
	return h.b.word.Load()&h.mask != 0
}

// Reset clears the handle's signals. Other bits are left alone, but a handle
// registered for an overlapping signal loses that notification too.
func (h Handle) Reset() {
	if h.b == nil {
		return
	}
	h.b.flush()
	h.b.word.And(^h.mask)
}

// Take clears the handle's signals and reports whether any of them was set,
// in one atomic step. A delivery cannot slip in between the check and the
// clear the way it can between Caught and Reset.
func (h Handle) Take() bool {
	if h.b == nil {
		return false
	}
	h.b.flush()
	return h.b.word.And(^h.mask)&h.mask != 0
}

// Mask returns the bits of the flag word the handle selects.
func (h Handle) Mask() uintptr { return h.mask }

// Signals returns the handle's signals in ascending order.
func (h Handle) Signals() []signum.Signal {
	var sigs []signum.Signal
	for m := h.mask; m != 0; m &= m - 1 {
		sigs = append(sigs, signum.FromBit(bits.TrailingZeros(uint(m))))
	}
	return sigs
}
