package automaton

import (
	"testing"

	"github.com/AbdoWise-z/regex-compiler/internal/ast"
)

func TestBuild_SingleCharHasTwoStates(t *testing.T) {
	root, err := ast.Parse("a")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	nfa := Build(root)

	if len(nfa.States) != 2 {
		t.Fatalf("expected 2 states for a single literal, got %d", len(nfa.States))
	}
	if nfa.States[nfa.Start].Eps != nil {
		t.Errorf("start state should have no epsilon edges for a bare literal")
	}
	if !nfa.States[nfa.Accept].Final {
		t.Errorf("accept state must be marked Final")
	}
}

func TestBuild_FragmentInvariant(t *testing.T) {
	root, err := ast.Parse("(a|bc)*d")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	nfa := Build(root)

	// Exactly one state is Final, and it must be nfa.Accept.
	finalCount := 0
	for _, st := range nfa.States {
		if st.Final {
			finalCount++
			if st.ID != nfa.Accept {
				t.Errorf("final state %d is not the NFA's Accept state %d", st.ID, nfa.Accept)
			}
		}
	}
	if finalCount != 1 {
		t.Fatalf("expected exactly 1 final state, got %d", finalCount)
	}

	// The accept state has no outgoing edges of any kind.
	acc := nfa.States[nfa.Accept]
	if len(acc.Out) != 0 || len(acc.Eps) != 0 {
		t.Errorf("accept state must have no outgoing transitions, got Out=%v Eps=%v", acc.Out, acc.Eps)
	}
}

func TestBuild_EmptyAlternationBranchIsEpsilon(t *testing.T) {
	root, err := ast.Parse("a||b")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	nfa := Build(root)

	if !nfa.Match("") {
		t.Errorf("a||b should accept the empty string via its middle empty branch")
	}
	if !nfa.Match("a") || !nfa.Match("b") {
		t.Errorf("a||b should still accept its non-empty branches")
	}
	if nfa.Match("ab") {
		t.Errorf("a||b should not accept \"ab\"")
	}
}
