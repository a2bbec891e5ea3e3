package pairing

import (
	"errors"

	"github.com/katalvlaran/volcanium/search"
)

// ErrNoOutcomes is returned when there is nothing to combine.
var ErrNoOutcomes = errors.New("pairing: no outcomes")

// Pair is the chosen plan: First and Second have disjoint opened sets.
// Second is the zero Outcome when the partner stays idle.
type Pair struct {
	First    search.Outcome
	Second   search.Outcome
	Pressure uint64
}
