package textrie

import (
	"iter"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func seqFromPairs[T comparable, V any](pairs []struct {
	Key   []T
	Value V
}) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func runes(s string) []rune { return []rune(s) }

func wordTrie(t *testing.T, words ...string) *Trie[rune, string] {
	t.Helper()
	pairs := make([]struct {
		Key   []rune
		Value string
	}, len(words))
	for i, w := range words {
		pairs[i].Key = runes(w)
		pairs[i].Value = w
	}
	return NewTrieFrom(seqFromPairs(pairs))
}

func ExampleNewTrieFrom() {
	words := map[string]int{"tea": 1, "teapot": 2}
	t := NewTrieFrom(func(yield func([]rune, int) bool) {
		for w, v := range words {
			if !yield([]rune(w), v) {
				return
			}
		}
	})
	_, ok := t.Find([]rune("tea"))
	_ = ok
	// Output:
}

func TestTrieEmpty(t *testing.T) {
	tr := NewTrie[rune, string]()
	require.True(t, tr.IsEmpty())
	require.Equal(t, 0, tr.Len())
	_, ok := tr.Find(runes("anything"))
	require.False(t, ok)
	require.Nil(t, tr.FindPrefix(runes("a")))
}

func TestTrieFindExact(t *testing.T) {
	tr := wordTrie(t, "sea", "seashell", "she", "shells")

	for _, word := range []string{"sea", "seashell", "she", "shells"} {
		v, ok := tr.Find(runes(word))
		require.True(t, ok, "expected %q to be found", word)
		require.Equal(t, word, v)
	}

	for _, miss := range []string{"s", "sh", "seashells", "shell"} {
		_, ok := tr.Find(runes(miss))
		require.False(t, ok, "expected %q not to be found", miss)
	}

	require.Equal(t, 4, tr.Len())
}

func TestTrieFindPrefix(t *testing.T) {
	tr := wordTrie(t, "sea", "seashell", "seashore", "she")

	got := tr.FindPrefix(runes("sea"))
	sort.Strings(got)
	require.Equal(t, []string{"sea", "seashell", "seashore"}, got)

	require.Nil(t, tr.FindPrefix(runes("zz")))
	require.ElementsMatch(t, []string{"sea", "seashell", "seashore", "she"}, tr.FindPrefix(nil))
}

func TestTrieDuplicateKeysKeepFirst(t *testing.T) {
	pairs := []struct {
		Key   []rune
		Value string
	}{
		{runes("sea"), "first"},
		{runes("sea"), "second"},
	}
	tr := NewTrieFrom(seqFromPairs(pairs))

	require.Equal(t, 1, tr.Len())
	v, ok := tr.Find(runes("sea"))
	require.True(t, ok)
	require.Equal(t, "first", v)
}

func TestTrieAllAndValues(t *testing.T) {
	tr := wordTrie(t, "a", "b", "c")

	var viaAll []string
	for v := range tr.All() {
		viaAll = append(viaAll, v)
	}
	sort.Strings(viaAll)

	viaValues := tr.Values()
	sort.Strings(viaValues)

	require.Equal(t, []string{"a", "b", "c"}, viaAll)
	require.Equal(t, []string{"a", "b", "c"}, viaValues)
}

func TestTrieFindApproxZeroDistanceMatchesExact(t *testing.T) {
	tr := wordTrie(t, "kitten", "sitting", "bitten")
	params := Levenshtein[rune, int](0)

	matches := FindApprox(tr, runes("kitten"), params)
	require.Len(t, matches, 1)
	require.Equal(t, "kitten", matches[0].Value)
	require.Equal(t, 0, matches[0].Distance)
}

func TestTrieFindApproxWithinBudget(t *testing.T) {
	tr := wordTrie(t, "kitten", "sitting", "bitten", "mitten")
	params := Levenshtein[rune, int](2)

	matches := FindApprox(tr, runes("kitten"), params)
	byValue := map[string]int{}
	for _, m := range matches {
		byValue[m.Value] = m.Distance
	}

	require.Equal(t, 0, byValue["kitten"])
	require.Equal(t, 1, byValue["bitten"])
	require.Equal(t, 1, byValue["mitten"])
	require.NotContains(t, byValue, "sitting")
}

func TestTrieFindPrefixApproxDeduplicatesByMinDistance(t *testing.T) {
	tr := wordTrie(t, "cat", "cats", "cot")
	params := Levenshtein[rune, int](1)

	matches := FindPrefixApprox(tr, runes("cat"), params)

	seen := map[string]bool{}
	for _, m := range matches {
		require.False(t, seen[m.Value], "value %q reported more than once", m.Value)
		seen[m.Value] = true
	}
	require.True(t, seen["cat"])
	require.True(t, seen["cats"])
	require.True(t, seen["cot"])

	for i := 1; i < len(matches); i++ {
		require.LessOrEqual(t, matches[i-1].Distance, matches[i].Distance, "results must be sorted by ascending distance")
	}
}

func TestTrieFindApproxRespectsLimit(t *testing.T) {
	tr := wordTrie(t, "abcdef")
	params := Levenshtein[rune, int](1)

	matches := FindApprox(tr, runes("abc"), params)
	require.Empty(t, matches, "a three-character edit distance gap must not be reported under a limit of 1")
}
