package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysOntoDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regexc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nfaOutput: custom_nfa.json\ncaption: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom_nfa.json", cfg.NFAOutput)
	assert.False(t, cfg.Caption)
	assert.Equal(t, Default().DFAOutput, cfg.DFAOutput) // untouched field keeps its default
}

func TestLoad_MissingFileIsIOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDOTOptions_RespectsCaptionFlag(t *testing.T) {
	cfg := Default()
	cfg.Caption = false
	assert.Equal(t, "", cfg.DOTOptions("abc").Caption)

	cfg.Caption = true
	assert.Equal(t, "abc", cfg.DOTOptions("abc").Caption)
}
