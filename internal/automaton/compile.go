package automaton

import "github.com/AbdoWise-z/regex-compiler/internal/ast"

// Compile parses pattern and runs the Thompson construction over it,
// returning the resulting NFA. It is the one-call convenience entry
// point the CLI and tests use instead of wiring ast.Parse and Build by
// hand.
func Compile(pattern string) (*NFA, error) {
	root, err := ast.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Build(root), nil
}
