package pairing_test

import (
	"testing"

	"github.com/katalvlaran/volcanium/internal/fixture"
	"github.com/katalvlaran/volcanium/network"
	"github.com/katalvlaran/volcanium/pairing"
	"github.com/katalvlaran/volcanium/search"
)

func sampleOutcomes(b *testing.B) []search.Outcome {
	b.Helper()
	g, err := network.Build(fixture.Records(fixture.Sample))
	if err != nil {
		b.Fatal(err)
	}
	outs, err := search.Outcomes(g, fixture.PairedBudget)
	if err != nil {
		b.Fatal(err)
	}

	return outs
}

func BenchmarkBest_Sample(b *testing.B) {
	outs := sampleOutcomes(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pairing.Best(outs)
	}
}

func BenchmarkExhaustive_Sample(b *testing.B) {
	outs := sampleOutcomes(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pairing.Exhaustive(outs)
	}
}
