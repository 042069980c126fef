package query

import "fmt"

// Range is a half-open range of original-word positions [Lo, Hi).
type Range struct {
	Lo, Hi int
}

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi) }

// Mapping is the table QueryId -> Range a Mapper produces (spec §3,
// "Mapping table").
type Mapping map[ID]Range

// Mapper builds the table tying every synthetic query id BuildTree
// generates back to the range of original-word positions it substitutes
// for (spec §4.D).
type Mapper struct {
	numWords int
	declared Mapping
}

// NewMapper creates a Mapper for a query of the given original word
// count.
func NewMapper(numWords int) *Mapper {
	return &Mapper{numWords: numWords, declared: make(Mapping)}
}

// Declare records that synthetic query id covers the original positions
// in rng and conceptually substitutes words for those positions.
//
// id always receives the whole-span entry rng, atomic-replacement
// handle plus doubling as the id of the replacement's first word
// (spec §4.D, "dual role"). When len(words) > 1 and rng is wide enough
// to hold one position per remaining word, ids id+1..id+len(words)-1
// each receive a genuine one-position sub-range, assigned contiguously
// starting right after rng.Lo; this is what lets a ranker drill into the
// replacement's constituent words. When rng isn't that wide (the common
// case of a single original word exploding into a multi-word synonym or
// split, e.g. "nyc" -> "new york city"), there is no further position to
// hand out, so those ids fall back to the same whole-span entry as id --
// still a valid sub-range of 0..numWords, just without finer attribution.
func (m *Mapper) Declare(rng Range, id ID, words []string) {
	m.declared[id] = rng

	l := len(words)
	if l <= 1 {
		return
	}

	width := rng.Hi - rng.Lo
	for j := 1; j < l; j++ {
		if width >= l {
			lo := rng.Lo + j
			m.declared[id+ID(j)] = Range{Lo: lo, Hi: lo + 1}
		} else {
			m.declared[id+ID(j)] = rng
		}
	}
}

// Mapping returns the table for every declared id plus, for every
// original word position i, the entry ID(i) -> [i, i+1).
func (m *Mapper) Mapping() Mapping {
	out := make(Mapping, len(m.declared)+m.numWords)
	for i := 0; i < m.numWords; i++ {
		out[ID(i)] = Range{Lo: i, Hi: i + 1}
	}
	for id, rng := range m.declared {
		out[id] = rng
	}
	return out
}
