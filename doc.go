/*
Package textrie is a generic dictionary of symbol sequences, built once
from a batch of key/value pairs and queried many times thereafter.

It offers three ways to query a Trie: exact lookup by key, enumeration of
every stored key having a given prefix, and Levenshtein-bounded
approximate variants of both. A second type, AhoCorasick, is built the
same way but turns the dictionary into a streaming multi-pattern scanner:
given a long input sequence, it reports every occurrence of every stored
pattern as a substring, in one pass.

Neither type supports inserting or removing a key once built; both are
safe for any number of concurrent readers once construction has returned.

	words := map[string]int{"sea": 1, "seashell": 2}
	t := textrie.NewTrieFrom(func(yield func([]rune, int) bool) {
		for k, v := range words {
			if !yield([]rune(k), v) {
				return
			}
		}
	})
	v, ok := t.Find([]rune("sea"))
*/
package textrie
