//go:build unix

package signum

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// POSIX signals available on every supported Unix.
const (
	SIGHUP    = Signal(unix.SIGHUP)
	SIGINT    = Signal(unix.SIGINT)
	SIGQUIT   = Signal(unix.SIGQUIT)
	SIGILL    = Signal(unix.SIGILL)
	SIGTRAP   = Signal(unix.SIGTRAP)
	SIGABRT   = Signal(unix.SIGABRT)
	SIGBUS    = Signal(unix.SIGBUS)
	SIGFPE    = Signal(unix.SIGFPE)
	SIGKILL   = Signal(unix.SIGKILL)
	SIGUSR1   = Signal(unix.SIGUSR1)
	SIGSEGV   = Signal(unix.SIGSEGV)
	SIGUSR2   = Signal(unix.SIGUSR2)
	SIGPIPE   = Signal(unix.SIGPIPE)
	SIGALRM   = Signal(unix.SIGALRM)
	SIGTERM   = Signal(unix.SIGTERM)
	SIGCHLD   = Signal(unix.SIGCHLD)
	SIGCONT   = Signal(unix.SIGCONT)
	SIGSTOP   = Signal(unix.SIGSTOP)
	SIGTSTP   = Signal(unix.SIGTSTP)
	SIGTTIN   = Signal(unix.SIGTTIN)
	SIGTTOU   = Signal(unix.SIGTTOU)
	SIGURG    = Signal(unix.SIGURG) // also sent by the Go runtime to preempt goroutines
	SIGXCPU   = Signal(unix.SIGXCPU)
	SIGXFSZ   = Signal(unix.SIGXFSZ)
	SIGVTALRM = Signal(unix.SIGVTALRM)
	SIGPROF   = Signal(unix.SIGPROF)
	SIGWINCH  = Signal(unix.SIGWINCH)
	SIGSYS    = Signal(unix.SIGSYS)
)

// Interrupt is the signal sent by the terminal on Ctrl-C.
const Interrupt = SIGINT

// maxSignal bounds the scan in All. It matches the size of the runtime's
// signal table.
const maxSignal = 65

// OS returns s as a value accepted by os/signal.
func (s Signal) OS() os.Signal { return syscall.Signal(s) }

// Valid reports whether s names a signal on this system.
func (s Signal) Valid() bool {
	return s > 0 && (name(s) != "" || isRealtime(s))
}

// All returns every named signal in ascending order.
func All() []Signal {
	var sigs []Signal
	for i := Signal(1); i < maxSignal; i++ {
		if name(i) != "" {
			sigs = append(sigs, i)
		}
	}
	return sigs
}

func name(s Signal) string { return unix.SignalName(syscall.Signal(s)) }

func lookup(n string) (Signal, bool) {
	s := unix.SignalNum(n)
	return Signal(s), s != 0
}
