// Package network builds the compacted valve graph the search runs on.
//
// What
//
//   - Assign every parsed valve a dense id in arrival order.
//   - Build a symmetric hop-count matrix over all valves (each tunnel costs 1)
//     and close it with matrix.FloydWarshall.
//   - Drop every zero-flow valve except the start, move the start to the last
//     slot, and restrict the matrix to the survivors.
//   - Expose flows, names and distances of the survivors plus the initial
//     closed set (one bit per openable valve).
//
// Layout after Build, for n openable valves:
//
//	index:  0 … n-1      n
//	        openable     start
//
// The start valve is never opened; it is only the search origin.
//
// Errors
//
//   - ErrNoRecords        empty input.
//   - ErrDuplicateValve   the same name appears twice.
//   - ErrUnknownTunnel    a tunnel names a valve with no record.
//   - ErrStartNotFound    the start valve has no record.
//   - ErrTooManyValves    more than valve.MaxValves openable valves.
//   - ErrOptionViolation  invalid option (empty start name).
package network
