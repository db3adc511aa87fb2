// Package automaton implements the Thompson NFA construction, the NFA
// simulation matcher, subset-construction determinization, and
// partition-refinement minimization. States are stored in an
// index-addressed arena (a slice keyed by dense integer ID) rather than
// an owning-pointer graph, so the `*` quantifier's back-edges never
// create a cyclic ownership problem and so serialization is a plain
// walk over a slice.
package automaton

// State is one NFA state. Out holds labeled (non-epsilon) transitions
// keyed by label, each mapping to a set of target IDs (de-duplicated on
// insert); Eps holds epsilon-transition targets the same way.
type State struct {
	ID    int
	Out   map[Label][]int
	Eps   []int
	Final bool
}

func newState(id int) *State {
	return &State{ID: id, Out: make(map[Label][]int)}
}

func (s *State) addOut(lbl Label, target int) {
	for _, t := range s.Out[lbl] {
		if t == target {
			return
		}
	}
	s.Out[lbl] = append(s.Out[lbl], target)
}

func (s *State) addEps(target int) {
	for _, t := range s.Eps {
		if t == target {
			return
		}
	}
	s.Eps = append(s.Eps, target)
}

// NFA is a Thompson-constructed automaton: a dense-ID state arena plus
// a single start state and a single accept state.
type NFA struct {
	States []*State
	Start  int
	Accept int
}

// fragment is a Thompson building block: exactly one start and one
// accept state. The start has no incoming edges within the fragment and
// the accept has no outgoing edges within the fragment, which is what
// lets every combinator below compose fragments in O(1).
type fragment struct {
	start  int
	accept int
}

// builder accumulates states into a single arena shared across the
// whole recursive build, so IDs never collide between subexpressions.
type builder struct {
	states []*State
}

func (b *builder) newState() int {
	id := len(b.states)
	b.states = append(b.states, newState(id))
	return id
}

// atom builds the two-state `start --label--> accept` fragment shared
// by literal, wildcard, and range atoms.
func (b *builder) atom(lbl Label) fragment {
	s := b.newState()
	a := b.newState()
	b.states[a].Final = true
	b.states[s].addOut(lbl, a)
	return fragment{start: s, accept: a}
}

func (b *builder) empty() fragment {
	s := b.newState()
	a := b.newState()
	b.states[a].Final = true
	b.states[s].addEps(a)
	return fragment{start: s, accept: a}
}

// concat chains two fragments: accept(a) --ε--> start(b). a's accept
// stops being final; the combined fragment's accept is b's.
func (b *builder) concat(a, c fragment) fragment {
	b.states[a.accept].addEps(c.start)
	b.states[a.accept].Final = false
	return fragment{start: a.start, accept: c.accept}
}

// alternate builds a fresh start/accept pair with epsilon fan-out/fan-in
// to each alternative.
func (b *builder) alternate(frags []fragment) fragment {
	s := b.newState()
	a := b.newState()
	b.states[a].Final = true
	for _, f := range frags {
		b.states[s].addEps(f.start)
		b.states[f.accept].addEps(a)
		b.states[f.accept].Final = false
	}
	return fragment{start: s, accept: a}
}

// optional wraps f for `?`: new S,A; S->s, S->A, f->A.
func (b *builder) optional(f fragment) fragment {
	s := b.newState()
	a := b.newState()
	b.states[a].Final = true
	b.states[s].addEps(f.start)
	b.states[s].addEps(a)
	b.states[f.accept].addEps(a)
	b.states[f.accept].Final = false
	return fragment{start: s, accept: a}
}

// star wraps f for `*`: new S,A; S->s, S->A, f->s, f->A. The loop goes
// back to f's own start, so S keeps no incoming edges.
func (b *builder) star(f fragment) fragment {
	s := b.newState()
	a := b.newState()
	b.states[a].Final = true
	b.states[s].addEps(f.start)
	b.states[s].addEps(a)
	b.states[f.accept].addEps(f.start)
	b.states[f.accept].addEps(a)
	b.states[f.accept].Final = false
	return fragment{start: s, accept: a}
}

// plus wraps f for `+`: new S,A; S->s, f->s, f->A.
func (b *builder) plus(f fragment) fragment {
	s := b.newState()
	a := b.newState()
	b.states[a].Final = true
	b.states[s].addEps(f.start)
	b.states[f.accept].addEps(f.start)
	b.states[f.accept].addEps(a)
	b.states[f.accept].Final = false
	return fragment{start: s, accept: a}
}
