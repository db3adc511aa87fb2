package export

import (
	"os"
	"os/exec"

	"github.com/AbdoWise-z/regex-compiler/internal/regexerr"
)

// RenderToFile writes dotSrc to dotPath and then shells out to the
// Graphviz `dot` layout engine to render it to imagePath in the given
// format (e.g. "png", "svg"). Graphviz itself is an external boundary:
// if the `dot` binary isn't on PATH, or it rejects the graph, the
// failure comes back as a RenderError, which callers may log and
// otherwise ignore rather than treat as fatal.
func RenderToFile(dotPath, dotSrc, imagePath, format string) error {
	if err := os.WriteFile(dotPath, []byte(dotSrc), 0o644); err != nil {
		return regexerr.Render("writing DOT source to "+dotPath, err)
	}

	if _, err := exec.LookPath("dot"); err != nil {
		return regexerr.Render("graphviz `dot` binary not found on PATH", err)
	}

	cmd := exec.Command("dot", "-T"+format, "-o", imagePath, dotPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return regexerr.Render("dot failed: "+string(out), err)
	}

	return nil
}
