package automaton

import "sort"

// sinkGroup is the distinguished group id standing in for the implicit
// sink: two states that both transition nowhere on some label are
// always considered to agree on that label (the both-undefined edge
// case), since no real group is ever assigned this id.
const sinkGroup = -1

// Minimize partition-refines dfa into an equivalent DFA with the
// minimum number of states, modulo the label-opacity of the alphabet.
// The initial partition is {accepting, non-accepting}; groups are
// repeatedly split while some label sends two members of the same
// group to different groups, until a full pass splits nothing.
func Minimize(dfa *DFA) *DFA {
	m := newRefiner(dfa)
	m.run()
	return m.collapse()
}

type refiner struct {
	dfa        *DFA
	sigma      []Label
	trans      map[int]map[Label]int // state -> label -> target state, absent = sink
	stateGroup map[int]int
	groups     map[int]map[int]bool
	nextGroup  int
}

func newRefiner(dfa *DFA) *refiner {
	r := &refiner{
		dfa:        dfa,
		sigma:      dfaAlphabet(dfa),
		trans:      map[int]map[Label]int{},
		stateGroup: map[int]int{},
		groups:     map[int]map[int]bool{},
	}

	for _, s := range dfa.States {
		r.trans[s.ID] = map[Label]int{}
	}
	for _, t := range dfa.Transitions {
		r.trans[t.Src][t.Label] = t.Dst
	}

	var nonAccepting, accepting []int
	for _, s := range dfa.States {
		if s.Final {
			accepting = append(accepting, s.ID)
		} else {
			nonAccepting = append(nonAccepting, s.ID)
		}
	}

	if len(nonAccepting) > 0 {
		r.addGroup(nonAccepting)
	}
	if len(accepting) > 0 {
		r.addGroup(accepting)
	}

	return r
}

func (r *refiner) addGroup(members []int) int {
	id := r.nextGroup
	r.nextGroup++
	set := make(map[int]bool, len(members))
	for _, s := range members {
		set[s] = true
		r.stateGroup[s] = id
	}
	r.groups[id] = set
	return id
}

func (r *refiner) target(state int, lbl Label) int {
	if t, ok := r.trans[state][lbl]; ok {
		return t
	}
	return -1
}

func (r *refiner) groupOf(state int) int {
	if state == -1 {
		return sinkGroup
	}
	return r.stateGroup[state]
}

// run refines the partition until stable, via a worklist algorithm:
// pop a group, compare every member against an arbitrary
// representative for each label, and on the first label that splits the
// group, push both halves back and move on to a fresh pop rather than
// continuing to examine the stale group under later labels. A split can
// invalidate groups already popped in the same pass, so passes over all
// groups repeat until one of them splits nothing.
func (r *refiner) run() {
	for r.pass() {
	}
}

// pass runs one worklist pass over every group and reports whether any
// group was split.
func (r *refiner) pass() bool {
	split := false
	var worklist []int
	for id := range r.groups {
		worklist = append(worklist, id)
	}

	for len(worklist) > 0 {
		g := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		members := r.groups[g]
		if len(members) <= 1 {
			continue
		}

		rep := minKey(members)

		for _, lbl := range r.sigma {
			repGroup := r.groupOf(r.target(rep, lbl))

			var diff []int
			for s := range members {
				if r.groupOf(r.target(s, lbl)) != repGroup {
					diff = append(diff, s)
				}
			}

			if len(diff) == 0 {
				continue
			}

			newID := r.addGroup(nil)
			newSet := r.groups[newID]
			for _, s := range diff {
				delete(members, s)
				r.stateGroup[s] = newID
				newSet[s] = true
			}

			worklist = append(worklist, g, newID)
			split = true
			break
		}
	}
	return split
}

// collapse merges each surviving group into a single DFA state whose
// underlying NFA-ID set is the union of its members' sets.
func (r *refiner) collapse() *DFA {
	var groupIDs []int
	for id, members := range r.groups {
		if len(members) > 0 {
			groupIDs = append(groupIDs, id)
		}
	}
	sort.Slice(groupIDs, func(i, j int) bool {
		return minKey(r.groups[groupIDs[i]]) < minKey(r.groups[groupIDs[j]])
	})

	newID := make(map[int]int, len(groupIDs)) // old group id -> new dense DFA state id
	out := &DFA{}

	for i, gid := range groupIDs {
		newID[gid] = i

		var nfaIDs []int
		final := false
		for member := range r.groups[gid] {
			nfaIDs = append(nfaIDs, r.dfa.States[member].NFAIDs...)
			if r.dfa.States[member].Final {
				final = true
			}
		}

		out.States = append(out.States, &DFAState{
			ID:     i,
			NFAIDs: sortedCopy(nfaIDs),
			Final:  final,
		})

		if gid == r.stateGroup[r.dfa.Start] {
			out.Start = i
		}
	}

	seen := map[Transition]bool{}
	for gid := range r.groups {
		if len(r.groups[gid]) == 0 {
			continue
		}
		rep := minKey(r.groups[gid])
		for _, lbl := range r.sigma {
			target := r.target(rep, lbl)
			if target == -1 {
				continue
			}
			t := Transition{Src: newID[gid], Label: lbl, Dst: newID[r.groupOf(target)]}
			if !seen[t] {
				seen[t] = true
				out.Transitions = append(out.Transitions, t)
			}
		}
	}

	return out
}

func minKey(m map[int]bool) int {
	min := -1
	first := true
	for k := range m {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}
