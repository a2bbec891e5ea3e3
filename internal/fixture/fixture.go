// Package fixture holds valve networks shared by tests across packages.
package fixture

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/volcanium/valve"
)

// Sample is the published ten-valve network.
// One agent with 30 minutes releases 1651; two agents with 26 minutes release 1707.
const Sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// Known answers for Sample.
const (
	SampleSolo   = 1651
	SamplePair   = 1707
	SoloBudget   = 30
	PairedBudget = 26
)

// Records parses input and panics on failure; fixtures are trusted.
func Records(input string) []valve.Record {
	recs, err := valve.ParseRecords(strings.NewReader(input))
	if err != nil {
		panic(err)
	}

	return recs
}

// Line returns records for valves named by names, chained in order
// names[0]-names[1]-…, with the given flow rates.
func Line(names []string, flows []uint) []valve.Record {
	if len(names) != len(flows) {
		panic(fmt.Sprintf("fixture.Line: %d names, %d flows", len(names), len(flows)))
	}
	recs := make([]valve.Record, len(names))
	for i, name := range names {
		recs[i] = valve.Record{Name: name, Flow: flows[i]}
		if i > 0 {
			recs[i].Tunnels = append(recs[i].Tunnels, names[i-1])
		}
		if i+1 < len(names) {
			recs[i].Tunnels = append(recs[i].Tunnels, names[i+1])
		}
	}

	return recs
}

// Names returns n distinct two-letter names starting at "AA": AA, AB, …, AZ, BA, ….
func Names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string([]byte{byte('A' + i/26), byte('A' + i%26)})
	}

	return out
}
