// Package cli parses the regexc command line.
package cli

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
)

// Options holds every flag regexc accepts.
type Options struct {
	Pattern string
	Match   string

	Config string

	NFAOutput    string
	DFAOutput    string
	MinDFAOutput string

	RenderNFA    bool
	RenderDFA    bool
	RenderMinDFA bool

	RenderImage  bool
	ImageFormat  string

	NoCaption bool
	Verbose   bool
	Silent    bool
}

// ParseFlags builds the CreateGroup-organized flag set and parses
// os.Args into an Options.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compile a regular expression to an NFA, DFA, and minimized DFA.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "regular expression to compile"),
		flagSet.StringVarP(&opts.Match, "match", "m", "", "run the compiled automaton against this string and report acceptance"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVar(&opts.NFAOutput, "nfa-out", "", "NFA JSON output path (default from config, nfa.json)"),
		flagSet.StringVar(&opts.DFAOutput, "dfa-out", "", "DFA JSON output path (default from config, dfa.json)"),
		flagSet.StringVar(&opts.MinDFAOutput, "min-dfa-out", "", "minimized DFA JSON output path (default from config, min_DFA.json)"),
		flagSet.BoolVarP(&opts.RenderNFA, "render-nfa", "rn", false, "also render the NFA as a DOT graph"),
		flagSet.BoolVarP(&opts.RenderDFA, "render-dfa", "rd", false, "also render the DFA as a DOT graph"),
		flagSet.BoolVarP(&opts.RenderMinDFA, "render-min-dfa", "rm", false, "also render the minimized DFA as a DOT graph"),
		flagSet.BoolVar(&opts.NoCaption, "no-caption", false, "omit the pattern caption from rendered graphs"),
		flagSet.BoolVar(&opts.RenderImage, "render-image", false, "also invoke the graphviz `dot` binary to render an image (requires dot on PATH)"),
		flagSet.StringVar(&opts.ImageFormat, "image-format", "svg", "image format passed to `dot -T` when -render-image is set"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", "regexc YAML config file"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "suppress all output except fatal errors"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not parse flags: %s\n", err)
	}

	if opts.Pattern == "" {
		gologger.Fatal().Msgf("-pattern is required")
	}

	return opts
}
