package sigflag

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/srozzo/go-sigflag/signum"
)

var (
	// ErrUnsupportedSignal means a signal's bit does not fit in the flag word.
	// Nothing is installed when it is returned.
	ErrUnsupportedSignal = errors.New("sigflag: unsupported signal")
	// ErrInvalidSignalSet means the platform cannot watch the requested
	// combination of signals. Windows only accepts exactly {Interrupt}.
	ErrInvalidSignalSet = errors.New("sigflag: invalid signal set")
)

// InstallError reports that the system refused to install the handler for
// Signal. Handlers installed earlier in the same Register call stay active.
type InstallError struct {
	Signal signum.Signal
	// Code is the native error number, or zero if Err carries none.
	Code syscall.Errno
	Err  error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("sigflag: install %v: %v", e.Signal, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

func newInstallError(sig signum.Signal, err error) *InstallError {
	ie := &InstallError{Signal: sig, Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		ie.Code = errno
	}
	return ie
}
