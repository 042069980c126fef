// Package qtree implements the query planning and execution core of a
// full-text search engine: BuildTree rewrites a raw query string into a
// boolean tree of term matchers (package query), and Evaluate runs that
// tree as set intersections/unions over inverted-index postings.
package qtree

import "strings"

// DocID identifies a document. Fixed at 16 bits so postings serialize
// with a stable width (spec §6).
type DocID uint16

// Position identifies a word occurrence within a document. Fixed at 8
// bits; §4.G promotes it to a wider integer before comparing pos+1 so
// that promotion never overflows.
type Position uint8

// Match is one (document, position) occurrence.
type Match struct {
	Doc DocID
	Pos Position
}

// Less orders Matches lexicographically by (Doc, Pos), the order
// PostingsList.Matches and phrase-join evidence are required to hold.
func (m Match) Less(o Match) bool {
	if m.Doc != o.Doc {
		return m.Doc < o.Doc
	}
	return m.Pos < o.Pos
}

// PostingsList is the per-term inverted-index record: the sorted,
// duplicate-free documents containing the term, and the sorted,
// duplicate-free occurrences within them (spec §3).
type PostingsList struct {
	DocIDs  []DocID
	Matches []Match
}

// Context is the read-only collaborator consulted while building and
// evaluating a query tree: a synonym lookup and a postings lookup (spec
// §3, "Context"). Callers own Context's lifetime; the core never
// mutates it.
type Context struct {
	// Synonyms maps an exact word sequence (joined with a single space,
	// since Tokenize already guarantees no word itself contains
	// whitespace) to the list of alternative word sequences registered
	// for it.
	Synonyms map[string][][]string

	// Postings maps a single term to its postings list.
	Postings map[string]PostingsList
}

// synonymKey canonicalizes a word sequence into the Synonyms map key.
func synonymKey(words []string) string {
	return strings.Join(words, " ")
}

// PostingsFor returns the postings list registered for term, or the
// zero PostingsList (empty DocIDs/Matches) if term is absent -- every
// lookup miss is a legitimate empty result, never an error (spec §7).
func (c *Context) PostingsFor(term string) PostingsList {
	if c == nil {
		return PostingsList{}
	}
	return c.Postings[term]
}

// DocFrequency is the frequency probe primitive: the number of
// documents containing term, or 0 if term is absent.
func (c *Context) DocFrequency(term string) int {
	return len(c.PostingsFor(term).DocIDs)
}
