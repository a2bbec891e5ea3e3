// Package search explores every order in which one agent can open valves
// within a time budget.
//
// Transition rule, from a state at valve v with r minutes left:
//
//	for every closed w with dist(v,w)+1 <= r:
//	    r'        = r - dist(v,w) - 1      (walk, then one minute to open)
//	    closed'   = closed \ {w}
//	    pressure' = pressure + flow(w)·r'  (w releases for the r' minutes left)
//
// A state with no legal transition is terminal and yields exactly one Outcome:
// the valves opened along its path and the pressure accumulated.
//
// The search is depth-first over an explicit stack of pending states, so the
// depth is bounded by memory rather than by the goroutine stack. Every
// transition builds a new State value; branches share nothing mutable.
//
// Modes
//
//   - MaxPressure: best pressure over all terminals (one agent).
//   - Outcomes:    the outcome of every state, terminals and early stops,
//     duplicates by opened set included, for pairing.Best to combine two
//     agents. A partner may stop early so the other can take the rest.
//
// Termination: each transition strictly shrinks both the remaining time and
// the closed set, so the state space is a finite DAG.
package search
