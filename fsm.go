package textrie

// State identifies a node of an fsm. State zero is always the root.
// States are assigned in construction order and are always contiguous:
// a freshly built automaton with n states uses exactly the ids [0, n).
type State uint32

// Root is the state every fsm starts in.
const Root State = 0

// fsm is a minimal deterministic transition table over a comparable
// alphabet. It has no notion of accepting states; that is layered on top
// by an attribute type (see attribute.go and engine.go).
type fsm[T comparable] struct {
	transitions []map[T]State
}

func newFSM[T comparable]() *fsm[T] {
	f := &fsm[T]{}
	f.newState()
	return f
}

func (f *fsm[T]) isRoot(s State) bool {
	return s == Root
}

func (f *fsm[T]) size() int {
	return len(f.transitions)
}

// newState appends a fresh state with no outgoing transitions and returns
// its id.
func (f *fsm[T]) newState() State {
	f.transitions = append(f.transitions, nil)
	return State(len(f.transitions) - 1)
}

// next looks up the transition from source labelled by symbol.
func (f *fsm[T]) next(source State, symbol T) (State, bool) {
	dest, ok := f.transitions[source][symbol]
	return dest, ok
}

// addTransition records a transition from source to dest labelled by
// symbol, creating source's map slot lazily. It panics if the transition
// already exists with a different destination, which would indicate a
// construction bug rather than caller error.
func (f *fsm[T]) addTransition(source State, symbol T, dest State) {
	if existing, ok := f.transitions[source][symbol]; ok {
		if existing != dest {
			panic("textrie: conflicting transition")
		}
		return
	}
	if f.transitions[source] == nil {
		f.transitions[source] = make(map[T]State)
	}
	f.transitions[source][symbol] = dest
}

// visitTransitions calls fn once for every outgoing transition of source,
// in unspecified order.
func (f *fsm[T]) visitTransitions(source State, fn func(symbol T, dest State)) {
	for symbol, dest := range f.transitions[source] {
		fn(symbol, dest)
	}
}
