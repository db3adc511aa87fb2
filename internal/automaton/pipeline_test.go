package automaton

import "testing"

// matchAll checks that the NFA, its determinized DFA, and that DFA's
// minimization all agree on s — the equivalence property every stage
// of the pipeline must preserve.
func matchAll(t *testing.T, pattern, s string, want bool) {
	t.Helper()

	nfa, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pattern, err)
	}
	dfa := Determinize(nfa)
	minDFA := Minimize(dfa)

	if got := nfa.Match(s); got != want {
		t.Errorf("NFA.Match(%q) against %q = %v, want %v", pattern, s, got, want)
	}
	if got := dfa.Match(s); got != want {
		t.Errorf("DFA.Match(%q) against %q = %v, want %v", pattern, s, got, want)
	}
	if got := minDFA.Match(s); got != want {
		t.Errorf("MinDFA.Match(%q) against %q = %v, want %v", pattern, s, got, want)
	}
}

func TestPipeline_CharSetAndGroupPlus(t *testing.T) {
	pattern := "[bc]*(cd)+"
	matchAll(t, pattern, "cd", true)
	matchAll(t, pattern, "bcd", true) // [bc]* takes "b", (cd)+ takes "cd"
	matchAll(t, pattern, "bcbccdcd", true)
	matchAll(t, pattern, "bcbc", false)
	matchAll(t, pattern, "", false)
}

func TestPipeline_Alternation(t *testing.T) {
	matchAll(t, "a|b|c", "a", true)
	matchAll(t, "a|b|c", "b", true)
	matchAll(t, "a|b|c", "d", false)
	matchAll(t, "a|b|c", "ab", false)
}

func TestPipeline_Star(t *testing.T) {
	matchAll(t, "a*", "", true)
	matchAll(t, "a*", "aaaa", true)
	matchAll(t, "a*", "aaab", false)
}

func TestPipeline_PlusThenOptional(t *testing.T) {
	matchAll(t, "a+b?", "a", true)
	matchAll(t, "a+b?", "aaab", true)
	matchAll(t, "a+b?", "b", false)
	matchAll(t, "a+b?", "aaabb", false)
}

func TestPipeline_EscapedDotIsNotWildcard(t *testing.T) {
	matchAll(t, `\.`, ".", true)
	matchAll(t, `\.`, "x", false)
	matchAll(t, ".", "x", true)
	matchAll(t, ".", ".", true)
}

func TestPipeline_CharSetRangePlus(t *testing.T) {
	matchAll(t, "[a-z]+", "hello", true)
	matchAll(t, "[a-z]+", "Hello", false)
	matchAll(t, "[a-z]+", "", false)
}

func TestDeterminize_StateIdentityIsStructural(t *testing.T) {
	nfa, err := Compile("a|a")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	dfa := Determinize(nfa)

	seen := map[string]bool{}
	for _, st := range dfa.States {
		key := canonicalKey(sortedCopy(st.NFAIDs))
		if seen[key] {
			t.Fatalf("duplicate DFA state for NFA-ID set %v", st.NFAIDs)
		}
		seen[key] = true
	}
}

func TestMinimize_NoMoreStatesThanDFA(t *testing.T) {
	nfa, err := Compile("(a|a)(b|b)*")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	dfa := Determinize(nfa)
	minDFA := Minimize(dfa)

	if len(minDFA.States) > len(dfa.States) {
		t.Fatalf("minimized DFA has %d states, more than DFA's %d", len(minDFA.States), len(dfa.States))
	}
}

func TestCompile_RejectsBadPattern(t *testing.T) {
	if _, err := Compile("(a"); err == nil {
		t.Fatal("expected a syntax error for an unmatched '('")
	}
}
