// Command regexc compiles a regular expression to an NFA, determinizes
// it to a DFA, minimizes that DFA, optionally matches an input string
// against all three, and serializes/renders whichever forms were
// requested.
package main

import (
	"errors"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/AbdoWise-z/regex-compiler/internal/automaton"
	"github.com/AbdoWise-z/regex-compiler/internal/cli"
	"github.com/AbdoWise-z/regex-compiler/internal/config"
	"github.com/AbdoWise-z/regex-compiler/internal/export"
	"github.com/AbdoWise-z/regex-compiler/internal/regexerr"
)

func main() {
	opts := cli.ParseFlags()

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		gologger.Fatal().Msgf("failed to load config: %v", err)
	}
	applyOverrides(&cfg, opts)

	os.Exit(run(opts, cfg))
}

// run performs the full compile -> NFA -> DFA -> minimized-DFA pipeline
// and returns the process exit code: 0 on success, non-zero on a
// syntax, semantic, or I/O failure. A RenderError is logged and
// recovered rather than treated as fatal.
func run(opts *cli.Options, cfg config.Config) int {
	nfa, err := automaton.Compile(opts.Pattern)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return exitCode(err)
	}
	gologger.Info().Msgf("compiled %q to an NFA with %d states", opts.Pattern, len(nfa.States))

	dfa := automaton.Determinize(nfa)
	gologger.Info().Msgf("determinized to a DFA with %d states", len(dfa.States))

	minDFA := automaton.Minimize(dfa)
	gologger.Info().Msgf("minimized to a DFA with %d states", len(minDFA.States))

	if opts.Match != "" {
		gologger.Info().Msgf("NFA.Match(%q) = %v", opts.Match, nfa.Match(opts.Match))
		gologger.Info().Msgf("DFA.Match(%q) = %v", opts.Match, dfa.Match(opts.Match))
		gologger.Info().Msgf("MinDFA.Match(%q) = %v", opts.Match, minDFA.Match(opts.Match))
	}

	if err := export.SaveNFAJSON(cfg.NFAOutput, nfa); err != nil {
		gologger.Error().Msgf("failed to save NFA JSON: %v", err)
		return exitCode(err)
	}
	if err := export.SaveDFAJSON(cfg.DFAOutput, dfa); err != nil {
		gologger.Error().Msgf("failed to save DFA JSON: %v", err)
		return exitCode(err)
	}
	if err := export.SaveDFAJSON(cfg.MinDFAOutput, minDFA); err != nil {
		gologger.Error().Msgf("failed to save minimized DFA JSON: %v", err)
		return exitCode(err)
	}

	if opts.RenderNFA {
		renderOrWarn(opts, cfg.RenderNFA, export.NFADOT(nfa, cfg.DOTOptions(opts.Pattern)))
	}
	if opts.RenderDFA {
		renderOrWarn(opts, cfg.RenderDFA, export.DFADOT(dfa, cfg.DOTOptions(opts.Pattern)))
	}
	if opts.RenderMinDFA {
		renderOrWarn(opts, cfg.RenderMinDFA, export.DFADOT(minDFA, cfg.DOTOptions(opts.Pattern)))
	}

	return 0
}

// renderOrWarn saves a DOT rendering (and, if requested, shells out to
// graphviz to render an image from it), logging but not failing the
// run on a RenderError per the render-failure propagation policy.
func renderOrWarn(opts *cli.Options, path, contents string) {
	warn := func(err error) {
		var renderErr *regexerr.RenderError
		if errors.As(err, &renderErr) {
			gologger.Warning().Msgf("%v", err)
			return
		}
		gologger.Error().Msgf("%v", err)
	}

	if !opts.RenderImage {
		if err := export.SaveDOT(path, contents); err != nil {
			warn(err)
		}
		return
	}

	imagePath := strings.TrimSuffix(path, ".dot") + "." + opts.ImageFormat
	if err := export.RenderToFile(path, contents, imagePath, opts.ImageFormat); err != nil {
		warn(err)
	}
}

func applyOverrides(cfg *config.Config, opts *cli.Options) {
	if opts.NFAOutput != "" {
		cfg.NFAOutput = opts.NFAOutput
	}
	if opts.DFAOutput != "" {
		cfg.DFAOutput = opts.DFAOutput
	}
	if opts.MinDFAOutput != "" {
		cfg.MinDFAOutput = opts.MinDFAOutput
	}
	if opts.NoCaption {
		cfg.Caption = false
	}
}

func exitCode(err error) int {
	var syntaxErr *regexerr.SyntaxError
	var semanticErr *regexerr.SemanticError
	var ioErr *regexerr.IOError
	switch {
	case errors.As(err, &syntaxErr):
		return 2
	case errors.As(err, &semanticErr):
		return 3
	case errors.As(err, &ioErr):
		return 4
	default:
		return 1
	}
}
