// Package invariant holds the single assertion helper the simulation
// core uses to surface programming errors immediately, per spec.md §7:
// a completed entity completing twice, a tube count going negative, or
// an instructor advancing from an impossible state are bugs, not
// recoverable run conditions, so they panic rather than return an
// error.
package invariant

import "fmt"

// Assertf panics with the formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
