// Package metrics records search effort and answers.
package metrics

import "time"

// Recorder receives per-stage observations from the solver.
type Recorder interface {
	// ObserveSearch records one search run: states popped, terminal outcomes
	// and wall time.
	ObserveSearch(mode string, states, terminals int, elapsed time.Duration)
	// ObserveAnswer records the final pressure of a mode.
	ObserveAnswer(mode string, pressure uint64)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveSearch(string, int, int, time.Duration) {}
func (Nop) ObserveAnswer(string, uint64)                  {}
