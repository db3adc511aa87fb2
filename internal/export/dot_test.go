package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdoWise-z/regex-compiler/internal/automaton"
)

func TestNFADOT_ContainsCaptionAndAcceptShape(t *testing.T) {
	nfa, err := automaton.Compile("a+")
	require.NoError(t, err)

	dot := NFADOT(nfa, DOTOptions{Caption: "a+"})

	assert.True(t, strings.HasPrefix(dot, "digraph NFA {"))
	assert.Contains(t, dot, `label="a+"`)
	assert.Contains(t, dot, "doublecircle")
	assert.Contains(t, dot, epsilonKey)
}

func TestDFADOT_NoCaptionWhenEmpty(t *testing.T) {
	nfa, err := automaton.Compile("a")
	require.NoError(t, err)
	dfa := automaton.Determinize(nfa)

	dot := DFADOT(dfa, DOTOptions{})

	assert.NotContains(t, dot, "labelloc")
	assert.Contains(t, dot, `label="a"`)
}
