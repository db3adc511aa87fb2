package automaton

// Determinize runs ε-closure subset construction over nfa and
// returns the resulting DFA. A DFA state's identity is the canonical
// sorted tuple of NFA-state IDs it subsumes (see canonicalKey); the
// worklist starts from the ε-closure of the NFA start state and grows
// by following each alphabet symbol to its ε-closed target set, never
// materializing the implicit sink for an empty target set.
func Determinize(nfa *NFA) *DFA {
	d := &determinizer{nfa: nfa, dfa: &DFA{}, index: map[string]int{}}

	sigma := alphabet(nfa)

	startSet := sortedCopy(setKeys(epsilonClosure(nfa, []int{nfa.Start})))
	startID := d.stateFor(startSet)
	d.dfa.Start = startID

	queue := []int{startID}
	queued := map[int]bool{startID: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curSet := d.dfa.States[cur].NFAIDs

		for _, lbl := range sigma {
			moved := move(nfa, curSet, lbl)
			if len(moved) == 0 {
				continue // no edge to a sink; the sink is implicit
			}

			closure := sortedCopy(setKeys(epsilonClosure(nfa, moved)))
			dstID := d.stateFor(closure)
			d.dfa.Transitions = append(d.dfa.Transitions, Transition{Src: cur, Label: lbl, Dst: dstID})

			if !queued[dstID] {
				queued[dstID] = true
				queue = append(queue, dstID)
			}
		}
	}

	return d.dfa
}

type determinizer struct {
	nfa   *NFA
	dfa   *DFA
	index map[string]int
}

// stateFor returns the DFA state ID for the given (already sorted)
// NFA-ID set, allocating a fresh state the first time a set is seen.
func (d *determinizer) stateFor(sortedIDs []int) int {
	key := canonicalKey(sortedIDs)
	if id, ok := d.index[key]; ok {
		return id
	}

	id := len(d.dfa.States)
	d.dfa.States = append(d.dfa.States, &DFAState{
		ID:     id,
		NFAIDs: sortedIDs,
		Final:  containsInt(sortedIDs, d.nfa.Accept),
	})
	d.index[key] = id
	return id
}

// move follows only ℓ-labeled (non-ε) edges out of the given NFA states.
func move(nfa *NFA, states []int, lbl Label) []int {
	var out []int
	for _, s := range states {
		out = append(out, nfa.States[s].Out[lbl]...)
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
