package qtree

import "golang.org/x/exp/slices"

// joinPhrase runs the classic advance-the-smaller-side merge join (the
// same idiom as the teacher's andLineMatchTree.matches) over two
// ascending (doc, pos) streams, matching first occurrences immediately
// followed by a second occurrence in the same document (spec §4.G).
// evidence is returned sorted and deduplicated, in (doc, left.pos) then
// (doc, right.pos) encounter order; docs is the ascending, deduplicated
// projection onto the doc component.
func joinPhrase(left, right []Match) (docs []DocID, evidence []Match) {
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		l, r := left[i], right[j]

		// promote to a width wide enough to hold l.Pos+1 without
		// overflowing Position's 8 bits.
		lNext := int(l.Pos) + 1

		switch {
		case l.Doc < r.Doc, l.Doc == r.Doc && lNext < int(r.Pos):
			i++
		case l.Doc > r.Doc, l.Doc == r.Doc && lNext > int(r.Pos):
			j++
		default: // l.Doc == r.Doc && lNext == int(r.Pos)
			evidence = append(evidence, l, r)
			if len(docs) == 0 || docs[len(docs)-1] != l.Doc {
				docs = append(docs, l.Doc)
			}
			i++
			j++
		}
	}

	// Each hit contributes (l, r) with l.Pos < r.Pos == l.Pos+1, and l
	// strictly increases between hits within a doc (i only advances
	// forward), so the emitted sequence is already non-decreasing in
	// (Doc, Pos); only adjacent duplicates need collapsing, same as the
	// teacher's own use of slices.Compact after a merge in
	// contentprovider.go.
	return docs, slices.Compact(evidence)
}
