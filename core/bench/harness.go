// core/bench/harness.go
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager"

	"dnasearch/core/match"
)

var (
	// ErrNoAlgorithm is returned when the Selection enables nothing.
	ErrNoAlgorithm = errors.New("no algorithm selected")
	// ErrBudgetExceeded is returned before a strategy starts when the input or
	// the time already spent is over the configured Budget.
	ErrBudgetExceeded = errors.New("search budget exceeded")
)

// Result is one strategy's outcome.
type Result struct {
	Algorithm match.Algorithm
	Name      string
	Matches   []int
	Count     int
	Elapsed   time.Duration
}

// ElapsedMillis reports Elapsed in fractional milliseconds.
func (r Result) ElapsedMillis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Budget bounds a run. Zero fields are unlimited. Budgets are checked only
// between strategies; a strategy that has started always runs to completion.
type Budget struct {
	MaxTextLen int           // longest text accepted
	MaxWork    int64         // cap on len(text)*len(pattern), the brute-force worst case
	MaxElapsed time.Duration // cumulative time after which no further strategy starts
}

// Harness times the selected strategies over one (text, pattern) pair.
type Harness struct {
	logger lager.Logger
	budget Budget
	now    func() time.Time
}

type Option func(*Harness)

func WithBudget(b Budget) Option { return func(h *Harness) { h.budget = b } }

// WithClock replaces time.Now; tests use it to make elapsed times deterministic.
func WithClock(now func() time.Time) Option { return func(h *Harness) { h.now = now } }

// New returns a Harness that logs under a "bench" session of logger.
func New(logger lager.Logger, opts ...Option) *Harness {
	if logger == nil {
		logger = lager.NewLogger("dnasearch")
	}
	h := &Harness{logger: logger.Session("bench"), now: time.Now}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Run executes every selected strategy once, in the order Brute-Force,
// Horspool, Boyer-Moore. Nothing is cached between calls.
//
// A strategy error (an empty pattern) is returned unchanged. When the budget
// or ctx stops the run part-way, the results gathered so far are returned
// alongside the error.
func (h *Harness) Run(ctx context.Context, sel Selection, text, pattern []byte) ([]Result, error) {
	algs := sel.Algorithms()
	if len(algs) == 0 {
		return nil, ErrNoAlgorithm
	}
	if err := h.checkInput(text, pattern); err != nil {
		h.logger.Info("rejected-input", lager.Data{"text-len": len(text), "pattern-len": len(pattern), "reason": err.Error()})
		return nil, err
	}

	out := make([]Result, 0, len(algs))
	var spent time.Duration
	for _, alg := range algs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if h.budget.MaxElapsed > 0 && spent >= h.budget.MaxElapsed {
			h.logger.Info("time-budget-exhausted", lager.Data{"spent": spent.String(), "skipped": alg.String()})
			return out, fmt.Errorf("%w: %s spent before %s (limit %s)", ErrBudgetExceeded, spent, alg, h.budget.MaxElapsed)
		}

		h.logger.Debug("starting-run", lager.Data{"algorithm": alg.String()})
		start := h.now()
		matches, err := match.Search(alg, text, pattern)
		elapsed := h.now().Sub(start)
		if err != nil {
			h.logger.Error("run-failed", err, lager.Data{"algorithm": alg.String()})
			return out, err
		}
		h.logger.Debug("finished-run", lager.Data{
			"algorithm": alg.String(),
			"duration":  elapsed.String(),
			"count":     len(matches),
		})

		spent += elapsed
		out = append(out, Result{
			Algorithm: alg,
			Name:      alg.String(),
			Matches:   matches,
			Count:     len(matches),
			Elapsed:   elapsed,
		})
	}
	return out, nil
}

func (h *Harness) checkInput(text, pattern []byte) error {
	b := h.budget
	if b.MaxTextLen > 0 && len(text) > b.MaxTextLen {
		return fmt.Errorf("%w: text length %d > %d", ErrBudgetExceeded, len(text), b.MaxTextLen)
	}
	if b.MaxWork > 0 {
		if w := int64(len(text)) * int64(len(pattern)); w > b.MaxWork {
			return fmt.Errorf("%w: work %d (text %d × pattern %d) > %d", ErrBudgetExceeded, w, len(text), len(pattern), b.MaxWork)
		}
	}
	return nil
}

// Run times sel over (text, pattern) with no budget and no logging.
func Run(sel Selection, text, pattern []byte) ([]Result, error) {
	return New(nil).Run(context.Background(), sel, text, pattern)
}
