package sigflag

import "github.com/srozzo/go-sigflag/signum"

// Register installs sigs on the Default bridge. See Bridge.Register.
func Register(sigs []signum.Signal, policy RestartPolicy) (Handle, error) {
	return Default.Register(sigs, policy)
}

// SetLogger sets the logger of the Default bridge.
func SetLogger(l LoggerFunc) { Default.SetLogger(l) }

// SetDebug toggles debug logging on the Default bridge.
func SetDebug(enabled bool) { Default.SetDebug(enabled) }
