package automaton

import "github.com/AbdoWise-z/regex-compiler/internal/ast"

// Build runs the Thompson construction over a parsed AST and returns the
// resulting NFA. The AST is assumed well-formed (produced by
// ast.Parse), so this never fails — invalid regexes are rejected during
// parsing, not during construction.
func Build(root *ast.Node) *NFA {
	b := &builder{}
	f := b.buildAlternation(root.Alternatives)
	return &NFA{States: b.states, Start: f.start, Accept: f.accept}
}

// buildAlternation builds the Alternation-over-branches fragment shared
// by Root and Group nodes.
func (b *builder) buildAlternation(branches []*ast.Node) fragment {
	frags := make([]fragment, len(branches))
	for i, branch := range branches {
		frags[i] = b.buildSequence(branch.Children)
	}
	if len(frags) == 1 {
		return frags[0]
	}
	return b.alternate(frags)
}

// buildSequence concatenates the fragments for an ordered run of atoms.
// An empty run (an empty alternative, as in `a||b`) becomes a direct
// epsilon edge that accepts the empty string.
func (b *builder) buildSequence(children []*ast.Node) fragment {
	if len(children) == 0 {
		return b.empty()
	}

	acc := b.buildAtom(children[0])
	for _, c := range children[1:] {
		acc = b.concat(acc, b.buildAtom(c))
	}
	return acc
}

// buildAtom builds the base fragment for a single atom node and then
// applies its quantifier, if any.
func (b *builder) buildAtom(node *ast.Node) fragment {
	var f fragment

	switch node.Kind {
	case ast.KindChar:
		f = b.atom(CharLabel(node.Char))
	case ast.KindAnyChar:
		f = b.atom(AnyLabel())
	case ast.KindCharSet:
		f = b.buildCharSet(node.Items)
	case ast.KindGroup:
		f = b.buildAlternation(node.Alternatives)
	case ast.KindRange:
		// Only reachable if a Range node is built standalone, which the
		// grammar never produces outside a CharSet; kept for symmetry
		// with buildCharSet's item handling.
		f = b.atom(RangeLabel(node.RangeStart, node.RangeEnd))
	default:
		// Root/AlternationBranch never reach buildAtom.
		f = b.empty()
	}

	switch node.Quantifier {
	case ast.Optional:
		return b.optional(f)
	case ast.Star:
		return b.star(f)
	case ast.Plus:
		return b.plus(f)
	default:
		return f
	}
}

// buildCharSet builds a CharSet as an alternation over its flat list of
// Char/Range items.
func (b *builder) buildCharSet(items []*ast.Node) fragment {
	frags := make([]fragment, len(items))
	for i, item := range items {
		switch item.Kind {
		case ast.KindRange:
			frags[i] = b.atom(RangeLabel(item.RangeStart, item.RangeEnd))
		default: // ast.KindChar
			frags[i] = b.atom(CharLabel(item.Char))
		}
	}
	if len(frags) == 1 {
		return frags[0]
	}
	return b.alternate(frags)
}
