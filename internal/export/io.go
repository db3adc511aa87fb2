package export

import (
	"os"

	"github.com/AbdoWise-z/regex-compiler/internal/automaton"
	"github.com/AbdoWise-z/regex-compiler/internal/regexerr"
)

// SaveNFAJSON writes nfa's JSON form to path.
func SaveNFAJSON(path string, nfa *automaton.NFA) error {
	data, err := MarshalNFA(nfa)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return regexerr.IO("write", path, err)
	}
	return nil
}

// LoadNFAJSON reads an NFA back from its JSON form at path.
func LoadNFAJSON(path string) (*automaton.NFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, regexerr.IO("read", path, err)
	}
	return UnmarshalNFA(data)
}

// SaveDFAJSON writes dfa's JSON form to path.
func SaveDFAJSON(path string, dfa *automaton.DFA) error {
	data, err := MarshalDFA(dfa)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return regexerr.IO("write", path, err)
	}
	return nil
}

// LoadDFAJSON reads a DFA back from its JSON form at path.
func LoadDFAJSON(path string) (*automaton.DFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, regexerr.IO("read", path, err)
	}
	return UnmarshalDFA(data)
}

// SaveDOT renders contents to path, wrapping any write failure as a
// RenderError: the one export step whose failure is recoverable at the
// call site rather than fatal to the whole run.
func SaveDOT(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return regexerr.Render("writing DOT output to "+path, err)
	}
	return nil
}
