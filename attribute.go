package textrie

// Attribute is the per-state payload an engine attaches to every fsm
// state. It is self-referential so a single generic engine can be
// instantiated with either trieAttr or acAttr without either flavor paying
// for the other's fields.
type Attribute[A any] interface {
	IsAccept() bool
	WithAccept() A
}

// trieAttr is the attribute used by the plain trie: just whether the
// state is accepting.
type trieAttr struct {
	accept bool
}

func (a trieAttr) IsAccept() bool { return a.accept }

func (a trieAttr) WithAccept() trieAttr {
	a.accept = true
	return a
}

// noLink is the acceptSuffixLink of a state that has no accepting state
// along its suffix-link chain (the root always has it).
const noLink State = ^State(0)

// acAttr is the attribute used by the Aho-Corasick overlay: accepting
// flag plus the suffix link and the nearest strictly-proper accepting
// ancestor along the suffix-link chain, or noLink if there is none.
type acAttr struct {
	accept           bool
	suffixLink       State
	acceptSuffixLink State
}

func (a acAttr) IsAccept() bool { return a.accept }

func (a acAttr) WithAccept() acAttr {
	a.accept = true
	return a
}
