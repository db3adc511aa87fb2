// Package config loads the optional CLI configuration file: default
// output filenames and DOT rendering style, the knobs a run doesn't
// want to respecify on every invocation.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/AbdoWise-z/regex-compiler/internal/export"
	"github.com/AbdoWise-z/regex-compiler/internal/regexerr"
)

// Config is the YAML-configurable subset of a run's behavior. Load
// overlays a file onto Default, so a missing or partial config file
// still produces a fully usable Config.
type Config struct {
	NFAOutput    string `yaml:"nfaOutput"`
	DFAOutput    string `yaml:"dfaOutput"`
	MinDFAOutput string `yaml:"minDfaOutput"`

	RenderNFA    string `yaml:"renderNfa"`
	RenderDFA    string `yaml:"renderDfa"`
	RenderMinDFA string `yaml:"renderMinDfa"`

	Caption bool `yaml:"caption"`
}

// Default returns the built-in filenames used when no config file is
// given, or a field is left unset in one that is.
func Default() Config {
	return Config{
		NFAOutput:    "nfa.json",
		DFAOutput:    "dfa.json",
		MinDFAOutput: "min_DFA.json",
		RenderNFA:    "nfa.dot",
		RenderDFA:    "dfa.dot",
		RenderMinDFA: "min_dfa.dot",
		Caption:      true,
	}
}

// Load reads a YAML config file at path and overlays it onto Default.
// A path of "" returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, regexerr.IO("read", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, regexerr.IO("parse", path, err)
	}

	return cfg, nil
}

// DOTOptions builds the export.DOTOptions for caption, honoring the
// config's Caption flag.
func (c Config) DOTOptions(caption string) export.DOTOptions {
	if !c.Caption {
		return export.DOTOptions{}
	}
	return export.DOTOptions{Caption: caption}
}
