package bench

import (
	"context"
	"strings"
	"testing"
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnasearch/core/match"
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func names(rs []Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestRunAllInFixedOrder(t *testing.T) {
	rs, err := Run(All(), []byte("ACGTACGT"), []byte("ACG"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Brute-Force", "Horspool", "Boyer-Moore"}, names(rs))
	for _, r := range rs {
		assert.Equal(t, []int{0, 4}, r.Matches, r.Name)
		assert.Equal(t, len(r.Matches), r.Count, r.Name)
		assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
	}
}

func TestRunSubsetIgnoresSelectionOrder(t *testing.T) {
	sel := SelectionOf(match.BoyerMoore, match.BruteForce)
	rs, err := Run(sel, []byte("AAAA"), []byte("AA"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Brute-Force", "Boyer-Moore"}, names(rs))
	assert.Equal(t, []int{0, 1, 2}, rs[1].Matches)
}

func TestRunNothingSelected(t *testing.T) {
	_, err := Run(Selection{}, []byte("ACGT"), []byte("A"))
	assert.ErrorIs(t, err, ErrNoAlgorithm)
}

func TestRunPropagatesEmptyPattern(t *testing.T) {
	logger := lagertest.NewTestLogger("test")
	h := New(logger)
	rs, err := h.Run(context.Background(), All(), []byte("ACGT"), nil)
	assert.ErrorIs(t, err, match.ErrEmptyPattern)
	assert.Empty(t, rs)

	var failed bool
	for _, m := range logger.LogMessages() {
		if strings.HasSuffix(m, "bench.run-failed") {
			failed = true
		}
	}
	assert.True(t, failed, "expected run-failed log, got %v", logger.LogMessages())
}

func TestRunElapsedUsesClock(t *testing.T) {
	h := New(lagertest.NewTestLogger("test"), WithClock(stepClock(3*time.Millisecond)))
	rs, err := h.Run(context.Background(), All(), []byte("ACGT"), []byte("CG"))
	require.NoError(t, err)
	require.Len(t, rs, 3)
	for _, r := range rs {
		assert.Equal(t, 3*time.Millisecond, r.Elapsed)
		assert.InDelta(t, 3.0, r.ElapsedMillis(), 1e-9)
	}
}

func TestRunLogsEachStrategy(t *testing.T) {
	logger := lagertest.NewTestLogger("test")
	_, err := New(logger).Run(context.Background(), All(), []byte("ACGT"), []byte("G"))
	require.NoError(t, err)

	finished := 0
	for _, l := range logger.Logs() {
		if strings.HasSuffix(l.Message, "bench.finished-run") {
			finished++
			assert.Contains(t, l.Data, "algorithm")
			assert.Contains(t, l.Data, "duration")
		}
	}
	assert.Equal(t, 3, finished)
}

func TestBudgetRejectsBeforeAnyRun(t *testing.T) {
	h := New(nil, WithBudget(Budget{MaxTextLen: 4}))
	rs, err := h.Run(context.Background(), All(), []byte("ACGTA"), []byte("A"))
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Nil(t, rs)

	h = New(nil, WithBudget(Budget{MaxWork: 10}))
	_, err = h.Run(context.Background(), All(), []byte("ACGTAC"), []byte("AC"))
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	_, err = h.Run(context.Background(), All(), []byte("ACGTA"), []byte("AC"))
	assert.NoError(t, err)
}

func TestTimeBudgetStopsBetweenStrategies(t *testing.T) {
	h := New(nil,
		WithClock(stepClock(10*time.Millisecond)),
		WithBudget(Budget{MaxElapsed: 15 * time.Millisecond}),
	)
	rs, err := h.Run(context.Background(), All(), []byte("ACGT"), []byte("A"))
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	// 10ms after the first run, 20ms after the second: the third never starts.
	assert.Equal(t, []string{"Brute-Force", "Horspool"}, names(rs))
}

func TestRunHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rs, err := New(nil).Run(ctx, All(), []byte("ACGT"), []byte("A"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rs)
}

func TestRunRecomputesEveryCall(t *testing.T) {
	text := []byte("ATATA")
	pat := []byte("ATA")
	a, err := Run(All(), text, pat)
	require.NoError(t, err)
	b, err := Run(All(), text, pat)
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, []int{0, 2}, a[i].Matches)
		assert.Equal(t, a[i].Matches, b[i].Matches)
	}
	// mutating one call's output must not leak into the next
	a[0].Matches[0] = 99
	c, err := Run(All(), text, pat)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, c[0].Matches)
	assert.Equal(t, "ATATA", string(text))
}
