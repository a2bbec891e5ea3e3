package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/volcanium/valve"
)

// Sentinel errors for Run.
var (
	ErrNilGraph        = errors.New("search: graph is nil")
	ErrNegativeBudget  = errors.New("search: negative time budget")
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// State is one node of the search: where the agent stands, how many minutes
// remain, which valves are still closed and the pressure secured so far.
type State struct {
	Valve     int
	Remaining int
	Closed    valve.Set
	Pressure  uint64
}

// Outcome is what an agent achieves by stopping at a State.
type Outcome struct {
	// Opened holds the valves opened along the path.
	Opened valve.Set

	// Pressure is the total released by the end of the budget.
	Pressure uint64
}

// Result aggregates one Run.
type Result struct {
	// Best is the maximum Pressure over all terminals.
	Best uint64

	// Outcomes holds one entry per popped state, in pop order. Populated
	// only when WithOutcomes is set.
	Outcomes []Outcome

	// States counts popped states; Terminals counts those with no successor.
	States    int
	Terminals int
}

// Option configures Run.
type Option func(*Options)

// Options holds Run parameters.
type Options struct {
	// Collect keeps the Outcome of every popped state in Result.Outcomes.
	Collect bool

	// Closed overrides the starting closed set; nil means every openable valve.
	Closed *valve.Set

	// OnOutcome is called once per terminal state, in discovery order.
	OnOutcome func(Outcome)

	err error
}

// DefaultOptions returns Options that only track the best pressure.
func DefaultOptions() Options {
	return Options{OnOutcome: func(Outcome) {}}
}

// WithOutcomes keeps the outcome of every popped state in the Result, so a
// plan that stops early is offered to pairing.
func WithOutcomes() Option {
	return func(o *Options) { o.Collect = true }
}

// WithClosed starts the search with only the valves in s closed.
// s must be a subset of the graph's openable valves; Run checks that.
func WithClosed(s valve.Set) Option {
	return func(o *Options) { o.Closed = &s }
}

// WithOnOutcome registers a hook invoked for each terminal outcome.
func WithOnOutcome(fn func(Outcome)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnOutcome hook", ErrOptionViolation)
			return
		}
		o.OnOutcome = fn
	}
}
