package sigflag

import (
	"fmt"
	"strings"
)

// RestartPolicy chooses what happens to a blocking system call that is
// interrupted by a registered signal. It only affects how the signal is
// installed.
type RestartPolicy int

const (
	// Interrupt asks for interrupted system calls to fail with EINTR. The
	// os/signal installer cannot honour it; see notifyInstaller.
	Interrupt RestartPolicy = iota
	// Restart asks the system to resume interrupted system calls (SA_RESTART).
	Restart
)

func (p RestartPolicy) String() string {
	switch p {
	case Interrupt:
		return "interrupt"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("RestartPolicy(%d)", int(p))
	}
}

// ParsePolicy parses "interrupt" or "restart", ignoring case.
func ParsePolicy(s string) (RestartPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interrupt":
		return Interrupt, nil
	case "restart":
		return Restart, nil
	}
	return 0, fmt.Errorf("sigflag: unknown restart policy %q", s)
}
