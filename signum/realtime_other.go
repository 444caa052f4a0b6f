//go:build unix && !linux

package signum

func isRealtime(Signal) bool { return false }
