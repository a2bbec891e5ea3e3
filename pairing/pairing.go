package pairing

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/volcanium/search"
)

// Best returns the disjoint pair with the highest combined pressure.
// The input slice is not modified.
func Best(outcomes []search.Outcome) (Pair, error) {
	if len(outcomes) == 0 {
		return Pair{}, ErrNoOutcomes
	}

	sorted := slices.Clone(outcomes)
	slices.SortStableFunc(sorted, func(a, b search.Outcome) int {
		return cmp.Compare(b.Pressure, a.Pressure)
	})

	top := sorted[0]
	best := Pair{First: top, Pressure: top.Pressure}

	// Cutoff: first partner disjoint from the top outcome.
	cut := len(sorted)
	for k := 1; k < len(sorted); k++ {
		if !sorted[k].Opened.Overlaps(top.Opened) {
			cut = k
			best = Pair{First: top, Second: sorted[k], Pressure: top.Pressure + sorted[k].Pressure}
			break
		}
	}

	// Any pair with a member at index >= cut sums to at most
	// top+sorted[cut], the bound already held. Only pairs inside [1, cut) remain.
	var i, j int
	for i = 1; i+1 < cut; i++ {
		if sorted[i].Pressure+sorted[i+1].Pressure <= best.Pressure {
			break
		}
		for j = i + 1; j < cut; j++ {
			sum := sorted[i].Pressure + sorted[j].Pressure
			if sum <= best.Pressure {
				break
			}
			if sorted[i].Opened.Overlaps(sorted[j].Opened) {
				continue
			}
			best = Pair{First: sorted[i], Second: sorted[j], Pressure: sum}
		}
	}

	return best, nil
}

// Exhaustive checks every pair. It returns the same Pressure as Best.
func Exhaustive(outcomes []search.Outcome) (Pair, error) {
	if len(outcomes) == 0 {
		return Pair{}, ErrNoOutcomes
	}

	var best Pair
	for i, a := range outcomes {
		if a.Pressure > best.Pressure {
			best = Pair{First: a, Pressure: a.Pressure}
		}
		for _, b := range outcomes[i+1:] {
			if a.Opened.Overlaps(b.Opened) {
				continue
			}
			if sum := a.Pressure + b.Pressure; sum > best.Pressure {
				best = Pair{First: a, Second: b, Pressure: sum}
			}
		}
	}

	return best, nil
}
