// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"code.cloudfoundry.org/lager"
	flag "github.com/spf13/pflag"

	"dnasearch/core/bench"
	"dnasearch/core/codon"
	"dnasearch/core/fasta"
	"dnasearch/core/match"
	"dnasearch/internal/cli"
	"dnasearch/internal/logging"
	"dnasearch/internal/output"
	"dnasearch/internal/version"
	"dnasearch/internal/writers"
)

const name = "dnasearch"

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// printThenExit flushes outw and maps a write failure to ExitRuntime.
func printThenExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitRuntime
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"--version"})
		cli.Usage(outw, fs, name)
		return printThenExit(outw, stderr, ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.Usage(outw, fs, name)
			return printThenExit(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", name)
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return printThenExit(outw, stderr, ExitOK)
	}

	logger, err := logging.New(name, stderr, opts.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	return search(parent, outw, stderr, logger, opts)
}

func search(parent context.Context, outw *bufio.Writer, stderr io.Writer, logger lager.Logger, opts cli.Options) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	h := bench.New(logger, bench.WithBudget(opts.Budget))
	pattern := []byte(opts.Pattern)

	in, writeErr := writers.StartReportWriter(outw, writers.Options{
		Format:    opts.Output,
		Header:    opts.Header,
		Positions: opts.Positions,
		Chart:     opts.Chart,
		Codons:    opts.Codons,
		Color:     opts.Color,
	}, 16)

	total := 0
	visit := func(source string, rec fasta.Record) error {
		log := logger.Session("search", lager.Data{"sequence": rec.ID, "length": len(rec.Seq)})
		results, err := h.Run(ctx, opts.Selection, rec.Seq, pattern)
		if err != nil {
			log.Error("failed", err)
			return fmt.Errorf("%s: %w", rec.ID, err)
		}
		r := output.Report{
			SourceFile: source,
			SequenceID: rec.ID,
			SeqLen:     len(rec.Seq),
			Pattern:    opts.Pattern,
			Results:    results,
		}
		if opts.Codons {
			// every strategy returns the same offsets; the first is as good as any
			r.Codons = codon.Annotate(rec.Seq, results[0].Matches, len(pattern))
		}
		total += r.TotalMatches()
		log.Info("searched", lager.Data{"matches": results[0].Count})

		select {
		case in <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var runErr error
	if opts.Text != "" {
		runErr = visit("", fasta.Record{ID: "input", Seq: []byte(opts.Text)})
	} else {
		for _, f := range opts.SeqFiles {
			runErr = fasta.ScanPath(ctx, f, func(rec fasta.Record) error { return visit(f, rec) })
			if runErr != nil {
				break
			}
		}
	}
	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if runErr != nil {
		_, _ = fmt.Fprintln(stderr, runErr)
		return exitCode(runErr)
	}
	if total == 0 {
		return opts.NoMatchExitCode
	}
	return ExitOK
}

// exitCode maps input errors to ExitUsage and everything else to ExitRuntime.
func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, match.ErrEmptyPattern),
		errors.Is(err, bench.ErrBudgetExceeded),
		errors.Is(err, bench.ErrNoAlgorithm),
		errors.Is(err, fasta.ErrUnsupportedExt):
		return ExitUsage
	}
	return ExitRuntime
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
