package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/internal/fixture"
)

// stepClock advances one second per reading.
type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type durations map[string]time.Duration

func (d durations) ObserveSearch(mode string, _, _ int, elapsed time.Duration) { d[mode] = elapsed }
func (d durations) ObserveAnswer(string, uint64)                               {}

// The search duration starts after the network is built; Elapsed covers both.
func TestSolver_SearchDurationExcludesBuild(t *testing.T) {
	got := durations{}
	s := New(Settings{SoloBudget: fixture.SoloBudget, PairBudget: fixture.PairedBudget}, nil, got)
	s.now = (&stepClock{}).now

	recs := fixture.Records(fixture.Sample)
	solo, err := s.Solo(context.Background(), recs)
	require.NoError(t, err)
	pair, err := s.Pair(context.Background(), recs)
	require.NoError(t, err)

	// Readings: began, searched, search end, finish.
	for _, mode := range []string{ModeSolo, ModePair} {
		assert.Equal(t, time.Second, got[mode], mode)
	}
	assert.Equal(t, 3*time.Second, solo.Elapsed)
	assert.Equal(t, 3*time.Second, pair.Elapsed)
}
