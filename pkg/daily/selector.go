// Package daily deterministically maps a calendar date to an index into the
// meditation corpus. Both execution contexts derive the index independently,
// so the computation has to be bit-exact and free of any I/O or shared state.
package daily

import (
	"fmt"
	"time"
)

// Key builds the hash key for a local calendar date. Month is zero-based,
// matching the calendar convention used by the reader surface.
func Key(year, month0, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, month0, day)
}

// KeyFor builds the hash key for the local date of the given instant
func KeyFor(t time.Time) string {
	return Key(t.Year(), int(t.Month())-1, t.Day())
}

// Hash folds the key into a signed 32-bit accumulator via
// hash = hash*31 + code, with two's-complement wraparound at every step.
func Hash(key string) int32 {
	var h int32
	for _, c := range key {
		h = h<<5 - h + int32(c)
	}
	return h
}

// Index returns the corpus index for the local date of t, 0 <= i < n.
// Same calendar day always yields the same index.
func Index(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	h := int64(Hash(KeyFor(t)))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}
