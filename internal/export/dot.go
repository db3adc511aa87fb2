package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AbdoWise-z/regex-compiler/internal/automaton"
)

// DOTOptions controls the optional part of the graph output: a caption
// identifying the source pattern on the rendered graph. State shapes
// are fixed and not configurable here.
type DOTOptions struct {
	// Caption, if non-empty, is emitted as a graph label so a rendered
	// image is self-describing about which pattern produced it.
	Caption string
}

// NFADOT renders nfa as a Graphviz DOT digraph: accept states are
// doubly-circled, the start state gets an entry arrow from a synthetic
// point-shaped node, and epsilon edges are labeled "ε" to distinguish them from
// character transitions.
func NFADOT(nfa *automaton.NFA, opts DOTOptions) string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("  rankdir=LR;\n")
	writeCaption(&b, opts.Caption)

	b.WriteString("  __start [shape=point];\n")
	fmt.Fprintf(&b, "  __start -> %q;\n", nfaStateName(nfa.Start))

	for _, st := range nfa.States {
		shape := "circle"
		if st.Final {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  %q [shape=%s];\n", nfaStateName(st.ID), shape)
	}

	for _, st := range nfa.States {
		eps := append([]int(nil), st.Eps...)
		sort.Ints(eps)
		for _, t := range eps {
			fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", nfaStateName(st.ID), nfaStateName(t), epsilonKey)
		}

		labels := make([]automaton.Label, 0, len(st.Out))
		for lbl := range st.Out {
			labels = append(labels, lbl)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i].String() < labels[j].String() })

		for _, lbl := range labels {
			targets := append([]int(nil), st.Out[lbl]...)
			sort.Ints(targets)
			for _, t := range targets {
				fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", nfaStateName(st.ID), nfaStateName(t), lbl.String())
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// DFADOT renders dfa (determinized or minimized) the same way as
// NFADOT, with DFA state names per dfaStateName.
func DFADOT(dfa *automaton.DFA, opts DOTOptions) string {
	var b strings.Builder
	b.WriteString("digraph DFA {\n")
	b.WriteString("  rankdir=LR;\n")
	writeCaption(&b, opts.Caption)

	b.WriteString("  __start [shape=point];\n")
	fmt.Fprintf(&b, "  __start -> %q;\n", dfaStateName(dfa.States[dfa.Start].NFAIDs))

	for _, st := range dfa.States {
		shape := "circle"
		if st.Final {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  %q [shape=%s];\n", dfaStateName(st.NFAIDs), shape)
	}

	for _, st := range dfa.States {
		for _, t := range dfa.TransitionsFrom(st.ID) {
			fmt.Fprintf(&b, "  %q -> %q [label=%q];\n",
				dfaStateName(st.NFAIDs), dfaStateName(dfa.States[t.Dst].NFAIDs), t.Label.String())
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func writeCaption(b *strings.Builder, caption string) {
	if caption == "" {
		return
	}
	fmt.Fprintf(b, "  labelloc=\"t\";\n  label=%q;\n", caption)
}
