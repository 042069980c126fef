// Package assert holds the core's debug-assertions for the one class of
// error spec.md leaves as a precondition violation rather than a
// handled case: malformed postings (spec §7). Following the teacher's
// own idiom for corrupt-state bugs (log.Panicf, see zoekt's
// indexdata.go/eval.go), these run unconditionally -- they're O(n) scans
// over data the caller already holds in memory, not a hot loop.
package assert

import "log"

// SortedUniqueUint16 panics if vals is not strictly ascending.
func SortedUniqueUint16(what string, vals []uint16) {
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			log.Panicf("malformed postings: %s is not strictly ascending at index %d (%d <= %d)", what, i, vals[i], vals[i-1])
		}
	}
}

// SortedUniqueLess panics if vals is not strictly ascending under less.
func SortedUniqueLess[T any](what string, vals []T, less func(a, b T) bool) {
	for i := 1; i < len(vals); i++ {
		if !less(vals[i-1], vals[i]) {
			log.Panicf("malformed postings: %s is not strictly ascending at index %d", what, i)
		}
	}
}
