package sigflag

// LoggerFunc receives debug output from a Bridge.
type LoggerFunc func(format string, args ...any)

// Option configures a Bridge.
type Option func(*Bridge)

// WithInstaller replaces the os/signal based installer, mainly for tests.
func WithInstaller(in Installer) Option {
	return func(b *Bridge) { b.installer = in }
}

func WithLogger(l LoggerFunc) Option {
	return func(b *Bridge) { b.logf = l }
}

func WithDebug(enabled bool) Option {
	return func(b *Bridge) { b.debug = enabled }
}
