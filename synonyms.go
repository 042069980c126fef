package qtree

// ResolveSynonyms returns the alternative word sequences registered for
// exactly the given word sequence, or nil if there are none. No
// normalization is applied beyond what the caller has already done
// (lowercasing); the lookup is a single exact-key lookup and never
// recurses into the result (spec §4.C, §9 "does not expand synonyms
// transitively").
func (c *Context) ResolveSynonyms(words []string) [][]string {
	if c == nil {
		return nil
	}
	return c.Synonyms[synonymKey(words)]
}
