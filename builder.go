package qtree

import (
	"strings"

	"github.com/queryleaf/qtree/query"
	sglog "github.com/sourcegraph/log"
)

const maxNGram = 3

// BuildTree rewrites queryString into a boolean tree of term matchers
// together with the mapping tying every synthetic query id back to the
// original-word range it stands in for (spec §4.E, §6 "build_tree").
//
// One Or group is built per original-word starting position, spanning
// every n-gram size 1..maxNGram that fits there, and the per-position
// groups are And-ed together left to right -- the same grouping
// original_source/src/main.rs's create_query_tree produces by grouping
// its sliding ngram_slice windows on starting-word identity (see
// SPEC_FULL.md's supplemented-feature notes). Groups legitimately
// overlap: the 3-gram at position i and the 1-gram at position i+1 both
// cover word i+1.
func BuildTree(ctx *Context, queryString string) (query.Op, query.Mapping) {
	log := sglog.Scoped("qtree", "query tree builder")

	words := query.Tokenize(queryString)
	n := len(words)
	mapper := query.NewMapper(n)

	b := &builder{ctx: ctx, words: words, mapper: mapper}

	groups := make([]query.Op, 0, n)
	for i := 0; i < n; i++ {
		groups = append(groups, b.positionGroup(i))
	}

	tree := query.NewAnd(groups...)
	log.Debug("built query tree", sglog.Int("words", n), sglog.Int("max_id", int(b.maxID)))
	return tree, mapper.Mapping()
}

type builder struct {
	ctx    *Context
	words  []query.Word
	mapper *query.Mapper
	maxID  query.ID
}

func (b *builder) take(id query.ID) query.ID {
	if id > b.maxID {
		b.maxID = id
	}
	return id
}

// positionGroup builds the Or over every n-gram size that fits starting
// at word position i (spec §4.E steps 1-2, one k at a time, all k
// collected per position rather than recursing on an untouched tail --
// see BuildTree's doc comment).
func (b *builder) positionGroup(i int) query.Op {
	n := len(b.words)
	maxK := maxNGram
	if remain := n - i; remain < maxK {
		maxK = remain
	}

	alts := make([]query.Op, 0, maxK)
	for k := 1; k <= maxK; k++ {
		if k == 1 {
			alts = append(alts, b.oneGramAlternatives(i)...)
		} else {
			alts = append(alts, b.nGramAlternatives(i, k)...)
		}
	}
	return query.NewOr(alts...)
}

// oneGramAlternatives is §4.E.2's k==1 case: the original word, its
// synonyms, and its best-frequency phrase split, in that order
// (SUPPLEMENTED FEATURES #2).
func (b *builder) oneGramAlternatives(i int) []query.Op {
	w := b.words[i]
	isLast := i == len(b.words)-1
	synthBase := query.ID((i + 1) * 100)

	ops := make([]query.Op, 0, 3)

	original := &query.Leaf{ID: b.take(query.ID(i)), Prefix: isLast, Kind: query.Tolerant{Word: w.Text}}
	ops = append(ops, original)

	next := synthBase
	for _, alt := range b.ctx.ResolveSynonyms([]string{w.Text}) {
		leadID := next
		leaf := exactAndOf(alt, &next, b)
		ops = append(ops, leaf)
		b.mapper.Declare(query.Range{Lo: i, Hi: i + 1}, leadID, alt)
	}

	if split, ok := b.ctx.SplitBestFrequency(w.Text); ok {
		alphaID := b.take(next)
		next++
		b.take(next)
		next++
		ops = append(ops, &query.Leaf{ID: alphaID, Prefix: isLast, Kind: query.Phrase{First: split.Left, Second: split.Right}})
		b.mapper.Declare(query.Range{Lo: i, Hi: i + 1}, alphaID, []string{split.Left, split.Right})
	}

	return ops
}

// nGramAlternatives is §4.E.2's k>1 case: synonyms of the k-word
// sequence, and the unconditional concatenation (SUPPLEMENTED FEATURES
// #3), both carrying synthetic ids drawn from the n-gram's own id range.
func (b *builder) nGramAlternatives(i, k int) []query.Op {
	groupWords := make([]string, k)
	for j := 0; j < k; j++ {
		groupWords[j] = b.words[i+j].Text
	}
	isLast := i+k-1 == len(b.words)-1
	synthBase := query.ID((i + 1) * pow(100, k))

	ops := make([]query.Op, 0, 2)
	next := synthBase

	for _, alt := range b.ctx.ResolveSynonyms(groupWords) {
		leadID := next
		leaf := exactAndOf(alt, &next, b)
		ops = append(ops, leaf)
		b.mapper.Declare(query.Range{Lo: i, Hi: i + k}, leadID, alt)
	}

	concatID := b.take(next)
	next++
	concat := strings.Join(groupWords, "")
	ops = append(ops, &query.Leaf{ID: concatID, Prefix: isLast, Kind: query.Exact{Word: concat}})
	b.mapper.Declare(query.Range{Lo: i, Hi: i + k}, concatID, []string{concat})

	return ops
}

// exactAndOf builds And(Exact(w)) over words, one fresh id per word
// drawn from *next (which is advanced past them), collapsing to the
// bare leaf when len(words) == 1.
func exactAndOf(words []string, next *query.ID, b *builder) query.Op {
	leaves := make([]query.Op, len(words))
	for j, w := range words {
		id := b.take(*next)
		*next++
		leaves[j] = &query.Leaf{ID: id, Prefix: false, Kind: query.Exact{Word: w}}
	}
	return query.NewAnd(leaves...)
}

func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
