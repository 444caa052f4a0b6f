//go:build unix

package sigflag

import (
	"golang.org/x/sys/unix"

	"github.com/srozzo/go-sigflag/signum"
)

// checkSet accepts any combination of signals; range checks come later.
func checkSet([]signum.Signal) error { return nil }

// installFlags maps a policy to the sa_flags bit sigaction would be given.
func installFlags(p RestartPolicy) uintptr {
	if p == Restart {
		return saRestart
	}
	return 0
}

// validate rejects what sigaction(2) rejects: numbers outside the flag word
// or unknown to the system, and the two signals that cannot be caught.
func validate(sig signum.Signal) error {
	if bit := sig.Bit(); bit < 0 || bit >= wordBits || !sig.Valid() {
		return unix.EINVAL
	}
	if sig == signum.SIGKILL || sig == signum.SIGSTOP {
		return unix.EINVAL
	}
	return nil
}
