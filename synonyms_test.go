package qtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSynonymsExactKeyOnly(t *testing.T) {
	ctx := fixtureContext()

	got := ctx.ResolveSynonyms([]string{"hello"})
	require.Equal(t, [][]string{{"hi"}}, got)

	require.Nil(t, ctx.ResolveSynonyms([]string{"nope"}))
}

func TestResolveSynonymsDoesNotRecurse(t *testing.T) {
	ctx := &Context{Synonyms: map[string][][]string{
		"nyc":           {{"new", "york"}},
		"new york":      {{"new york city"}},
		"new york city": {{"nyc"}},
	}}

	// nyc -> [new york] only; it must not also pull in new york's own
	// synonym chain (spec §9, synonyms are not expanded transitively).
	got := ctx.ResolveSynonyms([]string{"nyc"})
	require.Equal(t, [][]string{{"new", "york"}}, got)
}

func TestResolveSynonymsNilContext(t *testing.T) {
	var ctx *Context
	require.Nil(t, ctx.ResolveSynonyms([]string{"a"}))
}
