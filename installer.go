package sigflag

import (
	"math/bits"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/srozzo/go-sigflag/signum"
)

// Installer binds signals to a delivery callback. It stands for the
// operating system's handler installation call and is the seam tests use to
// deliver signals synthetically.
type Installer interface {
	// Install arranges for fire to be called with sig each time sig is
	// delivered. flags carries the restart flag derived from the
	// RestartPolicy. A second Install for the same signal replaces the
	// previous fire.
	Install(sig signum.Signal, flags uintptr, fire func(signum.Signal)) error
}

// Flusher is implemented by installers that hold deliveries until asked.
// Handles call Flush before every read or clear of the flag word.
type Flusher interface {
	Flush()
}

// binding is one installed signal.
type binding struct {
	sig  signum.Signal
	ch   chan os.Signal
	fire atomic.Pointer[func(signum.Signal)]
}

// notifyInstaller installs signals through os/signal. The runtime's own
// handler runs in signal context and does a non-blocking send on a one-slot
// channel, so repeated deliveries coalesce there. Flush moves whatever is
// pending into the flag word without blocking and without a goroutine.
//
// The runtime installs its handlers with SA_RESTART on every signal, so the
// flags argument cannot change restart behaviour here.
type notifyInstaller struct {
	mu    sync.Mutex // serializes Install
	slots [wordBits]atomic.Pointer[binding]
	armed atomic.Uintptr
}

var defaultInstaller = &notifyInstaller{}

func (n *notifyInstaller) Install(sig signum.Signal, flags uintptr, fire func(signum.Signal)) error {
	if err := validate(sig); err != nil {
		return err
	}
	bit := sig.Bit()

	n.mu.Lock()
	defer n.mu.Unlock()

	if b := n.slots[bit].Load(); b != nil {
		b.fire.Store(&fire)
		return nil
	}
	b := &binding{sig: sig, ch: make(chan os.Signal, 1)}
	b.fire.Store(&fire)
	n.slots[bit].Store(b)
	signal.Notify(b.ch, sig.OS())
	// Publish the slot before its bit so Flush never sees an empty slot.
	n.armed.Or(1 << uint(bit))
	return nil
}

func (n *notifyInstaller) Flush() {
	for m := n.armed.Load(); m != 0; m &= m - 1 {
		b := n.slots[bits.TrailingZeros(uint(m))].Load()
		select {
		case <-b.ch:
			(*b.fire.Load())(b.sig)
		default:
		}
	}
}
