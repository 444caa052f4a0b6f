package sigflag

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/srozzo/go-sigflag/signum"
)

// Bridge installs signals and hands out Handles over a flag word. All
// Bridges built with NewBridge share the process-wide word; they differ only
// in installer and logging.
type Bridge struct {
	mu sync.Mutex // guards logf and debug

	installer Installer
	flusher   Flusher
	word      *atomic.Uintptr
	fire      func(signum.Signal)

	logf  LoggerFunc
	debug bool
}

// NewBridge returns a Bridge that installs through os/signal unless
// WithInstaller says otherwise.
func NewBridge(opts ...Option) *Bridge {
	b := &Bridge{
		installer: defaultInstaller,
		word:      &state,
		logf:      func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logf == nil {
		b.logf = func(string, ...any) {}
	}
	b.flusher, _ = b.installer.(Flusher)
	b.fire = func(sig signum.Signal) { record(b.word, sig.Bit()) }
	return b
}

// Default is the Bridge used by the package-level functions.
var Default = NewBridge()

// Register installs a handler for each of sigs and returns a Handle that
// observes them. policy decides whether system calls interrupted by these
// signals are restarted.
//
// Every signal is checked before anything is installed: a bit outside the
// flag word yields ErrUnsupportedSignal, and a combination the platform
// cannot watch yields ErrInvalidSignalSet. If the system then refuses one of
// the signals, Register returns an *InstallError and leaves the signals
// before it installed.
func (b *Bridge) Register(sigs []signum.Signal, policy RestartPolicy) (Handle, error) {
	if err := checkSet(sigs); err != nil {
		return Handle{}, err
	}
	var mask uintptr
	for _, s := range sigs {
		bit := s.Bit()
		if bit < 0 || bit >= wordBits {
			return Handle{}, fmt.Errorf("%w: %v needs bit %d, word has %d", ErrUnsupportedSignal, s, bit, wordBits)
		}
		mask |= 1 << uint(bit)
	}

	flags := installFlags(policy)
	for _, s := range sigs {
		if err := b.installer.Install(s, flags, b.fire); err != nil {
			b.debugf("sigflag: install %v failed: %v", s, err)
			return Handle{}, newInstallError(s, err)
		}
	}
	b.debugf("sigflag: registered %v policy=%v mask=%#x", sigs, policy, mask)
	return Handle{mask: mask, b: b}, nil
}

// flush moves deliveries held by the installer into the flag word.
func (b *Bridge) flush() {
	if b.flusher != nil {
		b.flusher.Flush()
	}
}
