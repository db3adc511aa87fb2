// Package regexerr defines the typed error kinds the compiler pipeline
// can surface: syntax/semantic errors from the parser, I/O errors from
// the JSON loaders and savers, and render errors from the dot/Graphviz
// boundary.
package regexerr

import "fmt"

// SyntaxError reports a regex that violates the grammar. Pos is the
// rune (code point) offset into the source pattern where the violation
// was detected.
type SyntaxError struct {
	Pos   int
	Cause string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Cause)
}

// Syntax constructs a SyntaxError at the given position.
func Syntax(pos int, format string, a ...interface{}) error {
	return &SyntaxError{Pos: pos, Cause: fmt.Sprintf(format, a...)}
}

// SemanticError reports a regex that parses but is not meaningful, such
// as a character range whose start exceeds its end.
type SemanticError struct {
	Pos   int
	Cause string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at position %d: %s", e.Pos, e.Cause)
}

// Semantic constructs a SemanticError at the given position.
func Semantic(pos int, format string, a ...interface{}) error {
	return &SemanticError{Pos: pos, Cause: fmt.Sprintf(format, a...)}
}

// IOError wraps a failure reading or writing an automaton's JSON form.
type IOError struct {
	Op   string
	Path string
	Wrap error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error during %s of %q: %v", e.Op, e.Path, e.Wrap)
}

func (e *IOError) Unwrap() error {
	return e.Wrap
}

// IO constructs an IOError wrapping the underlying cause.
func IO(op, path string, cause error) error {
	return &IOError{Op: op, Path: path, Wrap: cause}
}

// RenderError reports that the Graphviz-compatible rendering backend was
// unavailable or rejected the produced graph. Per the propagation policy
// it is always recoverable at the call site — callers may log it and
// continue rather than treat it as fatal.
type RenderError struct {
	Cause string
	Wrap  error
}

func (e *RenderError) Error() string {
	if e.Wrap != nil {
		return fmt.Sprintf("render error: %s: %v", e.Cause, e.Wrap)
	}
	return fmt.Sprintf("render error: %s", e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Wrap
}

// Render constructs a RenderError, optionally wrapping an underlying
// cause (e.g. the error returned by exec.LookPath or exec.Cmd.Run).
func Render(cause string, wrap error) error {
	return &RenderError{Cause: cause, Wrap: wrap}
}
