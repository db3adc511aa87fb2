// Package ast defines the regex abstract syntax tree and the
// recursive-descent parser that builds it from a pattern string.
//
// The AST is a tagged variant over seven node kinds (Root, Group,
// AlternationBranch, Char, AnyChar, CharSet, Range): a flat struct with
// a Kind discriminant, which keeps the Thompson builder a simple switch
// over Kind instead of a type hierarchy.
package ast

// Kind discriminates the seven node shapes the grammar can produce.
type Kind int

const (
	KindRoot Kind = iota
	KindGroup
	KindAlternationBranch
	KindChar
	KindAnyChar
	KindCharSet
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindGroup:
		return "Group"
	case KindAlternationBranch:
		return "AlternationBranch"
	case KindChar:
		return "Char"
	case KindAnyChar:
		return "AnyChar"
	case KindCharSet:
		return "CharSet"
	case KindRange:
		return "Range"
	default:
		return "Unknown"
	}
}

// Quantifier is the postfix repetition operator attached to an atom.
type Quantifier int

const (
	NoQuantifier Quantifier = iota
	Optional               // ?
	Star                   // *
	Plus                   // +
)

// Node is a single AST node. Only the fields relevant to Kind are
// populated; the zero value of the others is never inspected by the
// builder.
//
//   - KindRoot, KindGroup: Alternatives holds one or more
//     KindAlternationBranch children, one per '|'-separated branch.
//   - KindAlternationBranch: Children holds the ordered concatenation
//     of atoms making up that branch.
//   - KindChar: Char is the literal code point.
//   - KindAnyChar: no extra fields; matches any single input code point.
//   - KindCharSet: Items holds a flat list of KindChar/KindRange nodes.
//   - KindRange: RangeStart/RangeEnd are inclusive code point bounds,
//     RangeStart <= RangeEnd.
//
// Quantifier is meaningful only on Char, AnyChar, CharSet, and Group —
// Root, AlternationBranch, and Range never carry one.
type Node struct {
	Kind Kind

	Char rune

	RangeStart rune
	RangeEnd   rune

	Quantifier Quantifier

	Alternatives []*Node // Root, Group
	Children     []*Node // AlternationBranch
	Items        []*Node // CharSet
}
