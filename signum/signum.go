// Package signum names the interrupt conditions a sigflag handle can watch.
//
// On Unix-like systems a Signal is the POSIX signal number and its bit
// position is the number itself. On Windows there is a single Signal,
// Interrupt, standing for the console control event.
package signum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Signal identifies one watchable interrupt condition.
type Signal int

// ErrUnknownSignal is returned by Parse for names that do not denote a
// signal on the running platform.
var ErrUnknownSignal = errors.New("signum: unknown signal")

// Bit returns the position of s in a flag word. It may be negative or exceed
// the width of the word; range checking is left to the caller.
func (s Signal) Bit() int { return int(s) }

// FromBit is the inverse of Signal.Bit.
func FromBit(bit int) Signal { return Signal(bit) }

// String returns the conventional name of s, such as "SIGINT", or
// "signal N" when the platform has no name for it.
func (s Signal) String() string {
	if n := name(s); n != "" {
		return n
	}
	return "signal " + strconv.Itoa(int(s))
}

// Parse converts a signal name or number to a Signal. Names are
// case-insensitive and the "SIG" prefix is optional.
func Parse(text string) (Signal, error) {
	n := strings.ToUpper(strings.TrimSpace(text))
	if n == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownSignal)
	}
	if i, err := strconv.Atoi(n); err == nil {
		if s := Signal(i); s.Valid() {
			return s, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnknownSignal, i)
	}
	if !strings.HasPrefix(n, "SIG") {
		n = "SIG" + n
	}
	if s, ok := lookup(n); ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSignal, text)
}

// ParseList parses a list of names with Parse, stopping at the first error.
func ParseList(texts []string) ([]Signal, error) {
	sigs := make([]Signal, 0, len(texts))
	for _, t := range texts {
		s, err := Parse(t)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, s)
	}
	return sigs, nil
}
