package automaton

// Match interprets the NFA directly against s: the frontier
// starts at the epsilon-closure of the start state, advances one input
// code point at a time by following matching labeled transitions and
// re-closing over epsilons, and rejects as soon as the frontier empties.
func (nfa *NFA) Match(s string) bool {
	frontier := epsilonClosure(nfa, []int{nfa.Start})

	for _, c := range s {
		next := map[int]bool{}
		for state := range frontier {
			for lbl, targets := range nfa.States[state].Out {
				if !lbl.Matches(c) {
					continue
				}
				for _, t := range targets {
					next[t] = true
				}
			}
		}

		if len(next) == 0 {
			return false
		}

		frontier = epsilonClosure(nfa, setKeys(next))
	}

	return frontier[nfa.Accept]
}

// epsilonClosure computes the smallest state set containing init and
// closed under epsilon transitions.
func epsilonClosure(nfa *NFA, init []int) map[int]bool {
	closure := make(map[int]bool, len(init))
	stack := append([]int(nil), init...)

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if closure[s] {
			continue
		}
		closure[s] = true

		for _, t := range nfa.States[s].Eps {
			if !closure[t] {
				stack = append(stack, t)
			}
		}
	}

	return closure
}

func setKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
