package sigflag

// debugf logs through the Bridge's logger when debug output is on.
// Logger and switch are read under the lock so SetLogger and SetDebug
// may race with Register.
func (b *Bridge) debugf(format string, args ...any) {
	b.mu.Lock()
	logf, on := b.logf, b.debug
	b.mu.Unlock()
	if on {
		logf(format, args...)
	}
}

// SetLogger replaces the Bridge's logger. A nil logger discards output.
func (b *Bridge) SetLogger(l LoggerFunc) {
	if l == nil {
		l = func(string, ...any) {}
	}
	b.mu.Lock()
	b.logf = l
	b.mu.Unlock()
}

// SetDebug toggles debug logging on the Bridge.
func (b *Bridge) SetDebug(enabled bool) {
	b.mu.Lock()
	b.debug = enabled
	b.mu.Unlock()
}
