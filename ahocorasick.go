package textrie

import "iter"

// AhoCorasick is a multi-pattern substring scanner: a static dictionary of
// key sequences, like Trie, but additionally able to stream over a long
// input sequence and report every occurrence of every stored key as a
// substring, in a single pass linear in the length of the input plus the
// number of matches.
type AhoCorasick[T comparable, V any] struct {
	e *engine[T, V, acAttr]
}

// NewAhoCorasick builds a scanner from a sequence of pattern/value pairs.
// As with Trie, a duplicate pattern keeps its first occurrence's value and
// later ones are silently dropped, and there is no way to add or remove a
// pattern afterward.
func NewAhoCorasick[T comparable, V any](patterns iter.Seq2[[]T, V]) *AhoCorasick[T, V] {
	ac := &AhoCorasick[T, V]{e: newEngine[T, V, acAttr]()}
	for key, value := range patterns {
		ac.e.insert(key, value)
	}
	ac.buildSuffixLinks()
	return ac
}

// Len reports the number of distinct patterns stored.
func (ac *AhoCorasick[T, V]) Len() int {
	return ac.e.size()
}

// buildSuffixLinks assigns every state's suffix link and accept suffix
// link with a single breadth-first pass, so that every state's link
// points to a state that was itself already linked. The root links to
// itself and its direct children link to the root; every other state's
// link is the destination of the extended transition out of its parent's
// suffix link, which by the BFS order is always already known.
func (ac *AhoCorasick[T, V]) buildSuffixLinks() {
	n := ac.e.fsm.size()
	if n == 0 {
		return
	}
	ac.e.attrs[Root].suffixLink = Root
	ac.e.attrs[Root].acceptSuffixLink = noLink

	queue := make([]State, 0, n)
	ac.e.fsm.visitTransitions(Root, func(symbol T, dest State) {
		ac.e.attrs[dest].suffixLink = Root
		queue = append(queue, dest)
	})

	for head := 0; head < len(queue); head++ {
		state := queue[head]
		ac.e.fsm.visitTransitions(state, func(symbol T, dest State) {
			ac.e.attrs[dest].suffixLink = ac.extended(ac.e.attrs[state].suffixLink, symbol)
			queue = append(queue, dest)
		})

		link := ac.e.attrs[state].suffixLink
		if ac.e.attrs[link].IsAccept() {
			ac.e.attrs[state].acceptSuffixLink = link
		} else {
			ac.e.attrs[state].acceptSuffixLink = ac.e.attrs[link].acceptSuffixLink
		}
	}
}

// extended computes the extended transition δ*(source, symbol): the
// direct transition if one exists, else the transition out of the
// nearest proper ancestor (by suffix link) that does have one, falling
// back to the root. Computed iteratively, never recursively, so a long
// run of failed transitions costs stack space proportional to nothing.
func (ac *AhoCorasick[T, V]) extended(source State, symbol T) State {
	for !ac.e.fsm.isRoot(source) {
		if dest, ok := ac.e.fsm.next(source, symbol); ok {
			return dest
		}
		source = ac.e.attrs[source].suffixLink
	}
	if dest, ok := ac.e.fsm.next(Root, symbol); ok {
		return dest
	}
	return Root
}

// AhoCorasickMatch is one occurrence of a stored pattern in a scanned sequence: the
// value associated with the pattern and the index one past its last
// symbol in the input.
type AhoCorasickMatch[V any] struct {
	Value V
	End   int
}

// Scan walks input once, reporting every occurrence of every stored
// pattern as a substring, via yield. It stops early if yield returns
// false.
func (ac *AhoCorasick[T, V]) Scan(input []T, yield func(AhoCorasickMatch[V]) bool) {
	state := Root
	for i, symbol := range input {
		state = ac.extended(state, symbol)
		if !ac.collectMatches(state, i+1, yield) {
			return
		}
	}
}

// collectMatches emits the value at state (if accepting) and then every
// value reachable by walking the accept suffix link chain of strictly
// shorter accepting suffixes, each tagged with the same end position:
// every one of them ends exactly at this point in the input, they just
// started at different offsets.
func (ac *AhoCorasick[T, V]) collectMatches(state State, end int, yield func(AhoCorasickMatch[V]) bool) bool {
	if idx := ac.e.valueIndex[state]; idx != -1 {
		if !yield(AhoCorasickMatch[V]{Value: ac.e.values[idx], End: end}) {
			return false
		}
	}
	for link := ac.e.attrs[state].acceptSuffixLink; link != noLink; link = ac.e.attrs[link].acceptSuffixLink {
		idx := ac.e.valueIndex[link]
		if idx != -1 {
			if !yield(AhoCorasickMatch[V]{Value: ac.e.values[idx], End: end}) {
				return false
			}
		}
	}
	return true
}
