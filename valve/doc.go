// Package valve defines the parsed valve record and the fixed-width valve set
// used to thread "which valves are still closed" through a search.
//
// Input grammar, one record per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Set is a uint16 newtype with one bit per openable valve. Every operation
// returns a new value; nothing mutates a Set in place.
package valve
