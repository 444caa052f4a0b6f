//go:build windows

package signum

import (
	"os"
	"syscall"
)

// Interrupt is the console control event (Ctrl-C or Ctrl-Break). It is the
// only signal that can be watched on Windows.
const Interrupt Signal = 0

// SIGINT is an alias of Interrupt so portable code can name it the Unix way.
const SIGINT = Interrupt

// OS returns s as a value accepted by os/signal.
func (s Signal) OS() os.Signal {
	if s == Interrupt {
		return os.Interrupt
	}
	return syscall.Signal(s)
}

// Valid reports whether s names a signal on this system.
func (s Signal) Valid() bool { return s == Interrupt }

// All returns every watchable signal.
func All() []Signal { return []Signal{Interrupt} }

func name(s Signal) string {
	if s == Interrupt {
		return "SIGINT"
	}
	return ""
}

func lookup(n string) (Signal, bool) {
	switch n {
	case "SIGINT", "SIGINTERRUPT":
		return Interrupt, true
	}
	return 0, false
}
