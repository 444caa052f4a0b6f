//go:build windows

package sigflag

import (
	"golang.org/x/sys/windows"

	"github.com/srozzo/go-sigflag/signum"
)

// checkSet accepts exactly {signum.Interrupt}. The console API takes a single
// process-wide callback, so there is nothing to multiplex.
func checkSet(sigs []signum.Signal) error {
	if len(sigs) != 1 || sigs[0] != signum.Interrupt {
		return ErrInvalidSignalSet
	}
	return nil
}

// installFlags always returns 0: console events do not interrupt system calls.
func installFlags(RestartPolicy) uintptr { return 0 }

func validate(sig signum.Signal) error {
	if sig != signum.Interrupt {
		return windows.ERROR_INVALID_PARAMETER
	}
	return nil
}
