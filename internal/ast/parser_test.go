package ast

import "testing"

func TestParse_Literal(t *testing.T) {
	root, err := Parse("ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Alternatives) != 1 {
		t.Fatalf("expected 1 branch, got %d", len(root.Alternatives))
	}
	branch := root.Alternatives[0]
	if len(branch.Children) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(branch.Children))
	}
	if branch.Children[0].Kind != KindChar || branch.Children[0].Char != 'a' {
		t.Errorf("child 0 = %+v, want Char 'a'", branch.Children[0])
	}
	if branch.Children[1].Kind != KindChar || branch.Children[1].Char != 'b' {
		t.Errorf("child 1 = %+v, want Char 'b'", branch.Children[1])
	}
}

func TestParse_Alternation(t *testing.T) {
	root, err := Parse("a|b|c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Alternatives) != 3 {
		t.Fatalf("expected 3 branches, got %d", len(root.Alternatives))
	}
}

func TestParse_EmptyAlternationBranch(t *testing.T) {
	root, err := Parse("a||b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Alternatives) != 3 {
		t.Fatalf("expected 3 branches, got %d", len(root.Alternatives))
	}
	if len(root.Alternatives[1].Children) != 0 {
		t.Errorf("middle branch should be empty, got %d children", len(root.Alternatives[1].Children))
	}
}

func TestParse_Quantifiers(t *testing.T) {
	tests := []struct {
		pattern string
		want    Quantifier
	}{
		{"a?", Optional},
		{"a*", Star},
		{"a+", Plus},
		{"a", NoQuantifier},
	}
	for _, tc := range tests {
		root, err := Parse(tc.pattern)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.pattern, err)
		}
		got := root.Alternatives[0].Children[0].Quantifier
		if got != tc.want {
			t.Errorf("%s: quantifier = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestParse_Group(t *testing.T) {
	root, err := Parse("(cd)+")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	group := root.Alternatives[0].Children[0]
	if group.Kind != KindGroup {
		t.Fatalf("expected KindGroup, got %v", group.Kind)
	}
	if group.Quantifier != Plus {
		t.Errorf("expected Plus quantifier on group, got %v", group.Quantifier)
	}
	if len(group.Alternatives) != 1 || len(group.Alternatives[0].Children) != 2 {
		t.Fatalf("unexpected group contents: %+v", group)
	}
}

func TestParse_AnyChar(t *testing.T) {
	root, err := Parse("\\.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node := root.Alternatives[0].Children[0]
	if node.Kind != KindChar || node.Char != '.' {
		t.Fatalf("expected escaped literal '.', got %+v", node)
	}

	root, err = Parse(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Alternatives[0].Children[0].Kind != KindAnyChar {
		t.Fatalf("expected KindAnyChar for bare '.'")
	}
}

func TestParse_CharSetRange(t *testing.T) {
	root, err := Parse("[a-z]+")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := root.Alternatives[0].Children[0]
	if set.Kind != KindCharSet {
		t.Fatalf("expected KindCharSet, got %v", set.Kind)
	}
	if set.Quantifier != Plus {
		t.Errorf("expected Plus quantifier, got %v", set.Quantifier)
	}
	if len(set.Items) != 1 || set.Items[0].Kind != KindRange {
		t.Fatalf("expected a single Range item, got %+v", set.Items)
	}
	if set.Items[0].RangeStart != 'a' || set.Items[0].RangeEnd != 'z' {
		t.Errorf("range = %c-%c, want a-z", set.Items[0].RangeStart, set.Items[0].RangeEnd)
	}
}

func TestParse_CharSetMixed(t *testing.T) {
	root, err := Parse("[bc]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := root.Alternatives[0].Children[0]
	if len(set.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(set.Items))
	}
	for i, want := range []rune{'b', 'c'} {
		if set.Items[i].Kind != KindChar || set.Items[i].Char != want {
			t.Errorf("item %d = %+v, want Char %q", i, set.Items[i], want)
		}
	}
}

// An escaped character is always a plain literal: it never absorbs a
// following '-' into a Range the way an unescaped literal can, so a
// dash right after one is left dangling and rejected as a bare '-'.
func TestParse_EscapedCharNeverStartsRange(t *testing.T) {
	if _, err := Parse(`[\a-z]`); err == nil {
		t.Fatalf("expected the dash after an escaped literal to be rejected")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []string{
		"(a",
		"a)",
		"[ab",
		"a\\",
		"*a",
		"(*)",
		"[]",
		"[z-a]",
		"[a-]",
	}
	for _, pattern := range tests {
		if _, err := Parse(pattern); err == nil {
			t.Errorf("Parse(%q): expected error, got none", pattern)
		}
	}
}
