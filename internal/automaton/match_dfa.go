package automaton

// Match decides whether s is accepted by d. Because the alphabet is
// opaque rather than a disjoint partition of characters, a DFA state
// can carry more than one outgoing transition whose label matches the
// same concrete rune — e.g. a literal 'a' edge and a separate 'a'-'z'
// range edge both leaving the same state. Match therefore advances a
// frontier of DFA states exactly as the NFA matcher advances a
// frontier of NFA states, just without an epsilon-closure step, which
// keeps its result identical to NFA.Match and
// Minimize(Determinize(nfa)).Match for every input.
func (d *DFA) Match(s string) bool {
	frontier := map[int]bool{d.Start: true}

	for _, c := range s {
		next := map[int]bool{}
		for src := range frontier {
			for _, t := range d.TransitionsFrom(src) {
				if t.Label.Matches(c) {
					next[t.Dst] = true
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		frontier = next
	}

	for id := range frontier {
		if d.States[id].Final {
			return true
		}
	}
	return false
}
