package qtree

import (
	"github.com/queryleaf/qtree/internal/assert"
	"github.com/queryleaf/qtree/query"
	sglog "github.com/sourcegraph/log"
)

// Evidence maps a leaf's query.ID to the (doc, position) occurrences
// that satisfied it (spec §6, leaf_evidence). Leaves may share postings
// with the context (a cheap borrow); phrase leaves own theirs.
type Evidence map[query.ID][]Match

// Evaluate runs tree against ctx, recursively intersecting/unioning doc
// sets over And/Or nodes and delegating leaves to the context's
// postings (spec §4.F). Every node is memoized by structural key
// (query.Key), so two equal sub-trees -- however they arose -- are
// evaluated once (spec Testable Property 8). Because memoization can
// skip visiting a later, structurally-equal occurrence of a leaf
// entirely, evidence is recorded by structural key up front against
// every ID that key covers in the tree, not against whichever
// occurrence happens to run first.
func Evaluate(ctx *Context, tree query.Op) (DocSet, Evidence) {
	idsByKey := make(map[string][]query.ID)
	query.VisitLeaves(tree, func(l *query.Leaf) {
		k := query.Key(l)
		idsByKey[k] = append(idsByKey[k], l.ID)
	})

	e := &evaluation{
		ctx:      ctx,
		log:      sglog.Scoped("qtree", "query tree evaluator"),
		memo:     make(map[string]DocSet),
		idsByKey: idsByKey,
		evidence: make(Evidence),
	}
	docs := e.eval(tree)
	e.log.Debug("evaluated query tree", sglog.Int("memo_entries", len(e.memo)), sglog.Int("result_docs", docs.Len()))
	return docs, e.evidence
}

type evaluation struct {
	ctx      *Context
	log      sglog.Logger
	memo     map[string]DocSet
	idsByKey map[string][]query.ID
	evidence Evidence
}

func (e *evaluation) eval(op query.Op) DocSet {
	key := query.Key(op)
	if docs, ok := e.memo[key]; ok {
		return docs
	}

	var docs DocSet
	switch o := op.(type) {
	case *query.And:
		children := make([]DocSet, len(o.Children))
		for i, ch := range o.Children {
			children[i] = e.eval(ch)
		}
		docs = IntersectDocSets(children...)
	case *query.Or:
		children := make([]DocSet, len(o.Children))
		for i, ch := range o.Children {
			children[i] = e.eval(ch)
		}
		docs = UnionDocSets(children...)
	case *query.Leaf:
		docs = e.evalLeaf(key, o)
	default:
		e.log.Fatal("unknown query.Op type")
	}

	e.memo[key] = docs
	return docs
}

// evalLeaf is §4.F.1: Tolerant and Exact both do a single term lookup;
// Phrase delegates to the merge-join in phrase.go. key is this leaf's
// structural key, already computed by eval -- recordEvidence fans the
// resulting matches out to every ID in the tree sharing that key.
func (e *evaluation) evalLeaf(key string, leaf *query.Leaf) DocSet {
	switch k := leaf.Kind.(type) {
	case query.Tolerant:
		return e.lookupTerm(key, k.Word)
	case query.Exact:
		return e.lookupTerm(key, k.Word)
	case query.Phrase:
		return e.evalPhrase(key, k)
	default:
		e.log.Fatal("unknown query.Kind type")
		return emptyDocSet()
	}
}

func (e *evaluation) lookupTerm(key, word string) DocSet {
	postings := e.ctx.PostingsFor(word)
	assert.SortedUniqueUint16("postings.DocIDs for "+word, toUint16(postings.DocIDs))
	assert.SortedUniqueLess("postings.Matches for "+word, postings.Matches, Match.Less)
	e.recordEvidence(key, postings.Matches)
	return NewDocSet(postings.DocIDs)
}

func (e *evaluation) evalPhrase(key string, k query.Phrase) DocSet {
	left := e.ctx.PostingsFor(k.First).Matches
	right := e.ctx.PostingsFor(k.Second).Matches
	assert.SortedUniqueLess("postings.Matches for "+k.First, left, Match.Less)
	assert.SortedUniqueLess("postings.Matches for "+k.Second, right, Match.Less)
	docs, evidence := joinPhrase(left, right)
	e.recordEvidence(key, evidence)
	return NewDocSet(docs)
}

func (e *evaluation) recordEvidence(key string, matches []Match) {
	for _, id := range e.idsByKey[key] {
		e.evidence[id] = matches
	}
}

func toUint16(ids []DocID) []uint16 {
	out := make([]uint16, len(ids))
	for i, d := range ids {
		out[i] = uint16(d)
	}
	return out
}
