// Package sigflag turns operating-system interrupt signals into flags that
// ordinary code can poll.
//
// A call to Register binds a set of signals to a single process-wide flag
// word and returns a Handle that selects the bits for those signals. Code
// then calls Caught to ask whether any of them arrived since the last Reset.
// The package never starts a goroutine and never blocks: delivery records a
// signal with one atomic bit set, and Caught, Reset and Take each touch the
// word with a single atomic load or and.
//
// Repeated deliveries of a signal collapse into one bit until it is cleared.
// Handles that share a signal share its bit, so a Reset through one handle
// also clears what the others would have observed.
//
// Registration replaces whatever the process did with those signals before
// (for SIGINT that means the default of terminating) and cannot be undone.
package sigflag

import (
	"math/bits"
	"sync/atomic"
)

// wordBits is the number of distinct signals the flag word can hold.
const wordBits = bits.UintSize

// state is the process-wide flag word. Bit n is set once the signal whose
// Bit is n has been delivered, and stays set until a handle owning it clears
// it. It lives for the whole process.
var state atomic.Uintptr

// record is the only thing done on delivery: one atomic or into word.
func record(word *atomic.Uintptr, bit int) {
	if bit < 0 || bit >= wordBits {
		return
	}
	word.Or(1 << uint(bit))
}
