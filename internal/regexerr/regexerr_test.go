package regexerr

import (
	"errors"
	"testing"
)

func TestSyntax_ErrorMessageIncludesPosition(t *testing.T) {
	err := Syntax(3, "unexpected %q", '*')
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected a *SyntaxError, got %T", err)
	}
	if syntaxErr.Pos != 3 {
		t.Errorf("Pos = %d, want 3", syntaxErr.Pos)
	}
}

func TestIO_UnwrapsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := IO("read", "/tmp/x", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the wrapped cause")
	}
}

func TestRender_UnwrapsNilCauseGracefully(t *testing.T) {
	err := Render("dot binary not found", nil)
	if err.Error() == "" {
		t.Fatal("expected a non-empty message even with a nil wrapped cause")
	}
	if errors.Unwrap(err) != nil {
		t.Fatal("expected Unwrap to return nil when no cause was given")
	}
}
