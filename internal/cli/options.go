// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	flag "github.com/spf13/pflag"

	"dnasearch/core/bench"
	"dnasearch/core/dna"
	"dnasearch/core/fasta"
	"dnasearch/internal/cliutil"
	"dnasearch/internal/config"
	"dnasearch/internal/logging"
	"dnasearch/internal/writers"
)

// Options holds all CLI flags and arguments, merged with the config file.
type Options struct {
	// Input
	Text     string
	SeqFiles []string
	Pattern  string

	// Search
	Selection bench.Selection
	Budget    bench.Budget

	// Output
	Output          string
	Positions       bool
	Chart           bool
	Codons          bool
	Color           bool
	Header          bool
	NoMatchExitCode int

	// Misc
	Quiet      bool
	LogLevel   string
	ConfigPath string
	Version    bool
}

// ParseArgs registers and parses all flags, overlays the config file on
// every flag the user did not set, and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var (
		opt        Options
		algorithms string
		noHeader   bool
		maxTextLen int
		maxWork    int64
		timeBudget time.Duration
	)

	// Input
	fs.StringVarP(&opt.Text, "text", "t", "", "DNA sequence to search (A/T/C/G/N)")
	fs.StringArrayVarP(&opt.SeqFiles, "sequences", "s", nil, "sequence file(s), .txt or .fasta (repeatable) or '-' for STDIN")
	fs.StringVarP(&opt.Pattern, "pattern", "p", "", "pattern to find [*]")

	// Search
	fs.StringVarP(&algorithms, "algorithms", "a", "all", "comma-separated strategies to run")
	fs.IntVar(&maxTextLen, "max-text-len", 0, "refuse sequences longer than N bases (0 = unlimited)")
	fs.Int64Var(&maxWork, "max-work", 0, "refuse inputs where sequence×pattern length exceeds N (0 = unlimited)")
	fs.DurationVar(&timeBudget, "time-budget", 0, "start no further strategy once this much time is spent (0 = unlimited)")

	// Output
	fs.StringVarP(&opt.Output, "output", "o", "text", "output format: "+strings.Join(writers.Formats, " | "))
	fs.BoolVar(&opt.Positions, "positions", false, "print match positions (text)")
	fs.BoolVar(&opt.Chart, "chart", false, "draw a timing bar chart (text)")
	fs.BoolVar(&opt.Codons, "codons", false, "annotate the sequence codon by codon")
	fs.BoolVar(&opt.Color, "color", false, "colorize chart and codons with ANSI escapes (text)")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line (text)")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no strategy finds a match")

	// Misc
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "log fatal errors only")
	fs.StringVar(&opt.LogLevel, "log-level", "error", "log level: "+strings.Join(logging.Levels, " | "))
	fs.StringVarP(&opt.ConfigPath, "config", "c", "", "YAML config file")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return opt, err
	}
	applyConfig(fs, &opt, cfg, &noHeader, &maxTextLen, &maxWork, &timeBudget)

	var errs *multierror.Error
	if fs.Changed("algorithms") {
		sel, err := bench.ParseSelection(algorithms)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("--algorithms: %w", err))
		}
		opt.Selection = sel
	}
	opt.Header = !noHeader
	opt.Budget = bench.Budget{MaxTextLen: maxTextLen, MaxWork: maxWork, MaxElapsed: timeBudget}
	if opt.Quiet {
		opt.LogLevel = "fatal"
	}

	if fs.NArg() > 0 {
		exp, err := cliutil.ExpandPositionals(fs.Args())
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}

	if err := validate(&opt); err != nil {
		errs = multierror.Append(errs, err)
	}
	return opt, errs.ErrorOrNil()
}

// applyConfig copies cfg into every option whose flag was left at its default.
func applyConfig(fs *flag.FlagSet, o *Options, cfg *config.Config, noHeader *bool, maxTextLen *int, maxWork *int64, timeBudget *time.Duration) {
	o.Selection = cfg.Algorithms
	if !fs.Changed("output") {
		o.Output = cfg.Output
	}
	if !fs.Changed("positions") {
		o.Positions = cfg.Positions
	}
	if !fs.Changed("chart") {
		o.Chart = cfg.Chart
	}
	if !fs.Changed("codons") {
		o.Codons = cfg.Codons
	}
	if !fs.Changed("color") {
		o.Color = cfg.Color
	}
	if !fs.Changed("no-header") {
		*noHeader = cfg.NoHeader
	}
	if !fs.Changed("no-match-exit-code") {
		o.NoMatchExitCode = cfg.NoMatchExitCode
	}
	if !fs.Changed("log-level") {
		o.LogLevel = cfg.LogLevel
	}
	b := cfg.Budget.Budget()
	if !fs.Changed("max-text-len") {
		*maxTextLen = b.MaxTextLen
	}
	if !fs.Changed("max-work") {
		*maxWork = b.MaxWork
	}
	if !fs.Changed("time-budget") {
		*timeBudget = b.MaxElapsed
	}
}

// validate collects every invalid option so the user sees them together.
// It normalizes Text and Pattern in place.
func validate(o *Options) error {
	var errs *multierror.Error
	add := func(err error) { errs = multierror.Append(errs, err) }

	usingText := o.Text != ""
	usingFiles := len(o.SeqFiles) > 0
	switch {
	case usingText && usingFiles:
		add(errors.New("--text conflicts with sequence files"))
	case !usingText && !usingFiles:
		add(errors.New("provide --text or at least one sequence file"))
	}
	if usingText {
		o.Text = dna.NormalizeString(o.Text)
		if o.Text == "" {
			add(errors.New("--text contains no A/T/C/G/N bases"))
		}
	}
	for _, f := range o.SeqFiles {
		if err := fasta.CheckExt(f); err != nil {
			add(err)
		}
	}

	if o.Pattern == "" {
		add(errors.New("--pattern is required"))
	} else if p, err := dna.Validate(o.Pattern); err != nil {
		add(fmt.Errorf("--pattern: %w", err))
	} else {
		o.Pattern = p
	}

	if o.Selection.Empty() {
		add(errors.New("--algorithms: at least one strategy must be selected"))
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		add(fmt.Errorf("invalid --output %q", o.Output))
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		add(errors.New("--no-match-exit-code must be between 0 and 255"))
	}
	if o.Budget.MaxTextLen < 0 || o.Budget.MaxWork < 0 || o.Budget.MaxElapsed < 0 {
		add(errors.New("--max-text-len, --max-work and --time-budget must be ≥ 0"))
	}
	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		add(fmt.Errorf("--log-level: %w", err))
	}
	return errs.ErrorOrNil()
}
