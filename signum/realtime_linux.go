package signum

// The Go runtime keeps 32, 33 and 34 for the C threading libraries and never
// relays them through os/signal; the rest of the real-time range is relayed.
func isRealtime(s Signal) bool { return s >= 35 && s < maxSignal }
