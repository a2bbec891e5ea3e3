package search_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/volcanium/network"
	"github.com/katalvlaran/volcanium/search"
	"github.com/katalvlaran/volcanium/valve"
)

// ExampleMaxPressure opens the two valves of a three-valve corridor.
func ExampleMaxPressure() {
	input := `Valve AA has flow rate=0; tunnel leads to valve BB
Valve BB has flow rate=3; tunnels lead to valves AA, CC
Valve CC has flow rate=10; tunnel leads to valve BB`

	recs, _ := valve.ParseRecords(strings.NewReader(input))
	g, _ := network.Build(recs)

	// CC first: 10·(6-2-1)=30, then back to BB: 3·(3-1-1)=3. BB first: 3·4 + 10·2 = 32.
	best, err := search.MaxPressure(g, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(best)
	// Output: 33
}
