package query

import "strings"

// Word is a single original-query word: its 0-based position after
// whitespace splitting, and its lowercased text (spec §3, "Word token").
type Word struct {
	Pos  int
	Text string
}

// Tokenize lowercases s and splits it into the maximal runs of
// non-whitespace separated by whitespace, numbering them 0..n-1. No
// stemming and no punctuation normalization beyond whitespace (spec
// §4.A).
func Tokenize(s string) []Word {
	fields := strings.Fields(strings.ToLower(s))
	words := make([]Word, len(fields))
	for i, f := range fields {
		words[i] = Word{Pos: i, Text: f}
	}
	return words
}
