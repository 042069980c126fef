package qtree

import (
	"github.com/RoaringBitmap/roaring"
)

// DocSet is an ascending, duplicate-free set of document ids. It is the
// evaluator's currency for And/Or node results (spec §4.F); internally
// it is backed by a roaring bitmap, the same set-algebra structure the
// teacher uses for its own doc-id predicates (BranchesRepos/RepoIDs in
// zoekt's matchtree.go), promoted from the 16-bit DocID the wire format
// fixes (spec §6) to roaring's native uint32 keys.
type DocSet struct {
	bits *roaring.Bitmap
}

// NewDocSet builds a DocSet from docids. docids need not be sorted or
// deduplicated on input; the returned set always iterates ascending and
// duplicate-free.
func NewDocSet(docids []DocID) DocSet {
	bits := roaring.New()
	for _, d := range docids {
		bits.Add(uint32(d))
	}
	return DocSet{bits: bits}
}

// emptyDocSet returns a DocSet with no members, always safe to union or
// intersect with.
func emptyDocSet() DocSet {
	return DocSet{bits: roaring.New()}
}

// ToDocIDs returns the set's members in strictly ascending order (spec
// Testable Property 1).
func (s DocSet) ToDocIDs() []DocID {
	if s.bits == nil {
		return nil
	}
	it := s.bits.Iterator()
	out := make([]DocID, 0, s.bits.GetCardinality())
	for it.HasNext() {
		out = append(out, DocID(it.Next()))
	}
	return out
}

// Len reports the number of members.
func (s DocSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.GetCardinality())
}

// UnionDocSets returns the multi-way union of sets (spec §4.F,
// Or(children); Testable Property 6). Union of zero sets is empty.
func UnionDocSets(sets ...DocSet) DocSet {
	out := roaring.New()
	for _, s := range sets {
		if s.bits != nil {
			out.Or(s.bits)
		}
	}
	return DocSet{bits: out}
}

// IntersectDocSets returns the multi-way intersection of sets (spec
// §4.F, And(children); Testable Property 5). Intersection of zero sets
// is empty -- And always has at least one child in a well-formed tree,
// but the empty case is defined rather than left to panic.
func IntersectDocSets(sets ...DocSet) DocSet {
	if len(sets) == 0 {
		return emptyDocSet()
	}
	out := sets[0].bits.Clone()
	for _, s := range sets[1:] {
		if s.bits == nil {
			return emptyDocSet()
		}
		out.And(s.bits)
	}
	return DocSet{bits: out}
}
