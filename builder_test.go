package qtree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/queryleaf/qtree/query"
)

func TestBuildTreeMappingCoversEveryLeafID(t *testing.T) {
	ctx := fixtureContext()
	tree, mapping := BuildTree(ctx, "new york city")

	var ids []query.ID
	query.VisitLeaves(tree, func(l *query.Leaf) { ids = append(ids, l.ID) })

	for _, id := range ids {
		rng, ok := mapping[id]
		require.True(t, ok, "leaf id %d missing from mapping", id)
		require.False(t, rng.Lo < 0 || rng.Hi > 3 || rng.Lo >= rng.Hi, "leaf id %d has out-of-range mapping %v", id, rng)
	}
}

func TestBuildTreeThreeGramCoverHasWholeSpanEntry(t *testing.T) {
	ctx := fixtureContext()
	_, mapping := BuildTree(ctx, "new york city")

	found := false
	for _, rng := range mapping {
		if rng == (query.Range{Lo: 0, Hi: 3}) {
			found = true
			break
		}
	}
	require.True(t, found, "expected some id mapped to the whole 0..3 span, mapping: %v", mapping)
}

func TestBuildTreeSingleWordCollapsesToLeaf(t *testing.T) {
	ctx := fixtureContext()
	tree, _ := BuildTree(ctx, "hi")

	// One word, no synonyms/phrase registered for "hi": positionGroup
	// returns NewOr of a single alternative, which collapses to the bare
	// leaf; the outer And over one position also collapses.
	leaf, ok := tree.(*query.Leaf)
	require.True(t, ok, "expected tree to collapse to a single leaf, got %T: %v", tree, tree)
	tol, ok := leaf.Kind.(query.Tolerant)
	require.True(t, ok && tol.Word == "hi", "expected Tolerant(hi), got %v", leaf.Kind)
	require.True(t, leaf.Prefix, "the only word in the query must carry prefix=true")
}

func TestBuildTreePrefixOnlyOnFinalWord(t *testing.T) {
	ctx := fixtureContext()
	tree, _ := BuildTree(ctx, "is this hello")

	var prefixed []string
	query.VisitLeaves(tree, func(l *query.Leaf) {
		if l.Prefix {
			if t, ok := l.Kind.(query.Tolerant); ok {
				prefixed = append(prefixed, t.Word)
			}
			if e, ok := l.Kind.(query.Exact); ok {
				prefixed = append(prefixed, e.Word)
			}
		}
	})

	for _, w := range prefixed {
		require.Contains(t, []string{"hello", "thishello", "isthishello"}, w, "unexpected prefix leaf on non-final word")
	}
}

func TestBuildTreeSynonymAlternativeIsExactAnd(t *testing.T) {
	ctx := fixtureContext()
	tree, _ := BuildTree(ctx, "hello")

	var sawSynonym bool
	query.VisitLeaves(tree, func(l *query.Leaf) {
		if e, ok := l.Kind.(query.Exact); ok && e.Word == "hi" {
			sawSynonym = true
			require.False(t, l.Prefix, "synonym alternatives must always have prefix=false")
		}
	})
	require.True(t, sawSynonym, "expected the registered synonym hello->hi to appear as an Exact leaf")
}

func TestBuildTreeEvaluatesAgainstFixture(t *testing.T) {
	ctx := fixtureContext()
	tree, _ := BuildTree(ctx, "hello")

	docs, _ := Evaluate(ctx, tree)
	// Every doc containing "hello" must appear in the result: the
	// original Tolerant("hello") alternative alone guarantees this.
	got := make(map[DocID]bool)
	for _, d := range docs.ToDocIDs() {
		got[d] = true
	}
	for _, d := range ctx.PostingsFor("hello").DocIDs {
		require.True(t, got[d], "doc %d contains %q but is missing from the result", d, "hello")
	}
}

func TestBuildTreeNoPanicOnAbsentWords(t *testing.T) {
	ctx := &Context{}
	tree, mapping := BuildTree(ctx, "nothing registered here")
	docs, _ := Evaluate(ctx, tree)
	require.Equal(t, 0, docs.Len(), "expected empty result for an all-absent query, got %v", docs.ToDocIDs())
	for i := 0; i < 3; i++ {
		_, ok := mapping[query.ID(i)]
		require.True(t, ok, "mapping missing original word id %d", i)
	}
}
