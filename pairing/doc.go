// Package pairing combines single-agent search outcomes into the best plan for
// two agents that never open the same valve.
//
// Both agents run with the same shortened budget, so one search.Outcomes call
// covers them both: the answer is the best sum over two outcomes whose opened
// sets are disjoint. The outcomes include plans that stop early, so one agent
// can leave valves it still had time for to the other. An idle partner (opens
// nothing, releases 0) is always allowed, so the best single outcome is a floor.
//
// Best sorts outcomes by pressure, descending, and uses the first partner
// disjoint from the top outcome as a cutoff: with index k of that partner,
// no pair with a member at index >= k can beat top+outcomes[k], so only pairs
// strictly between the top and k are scanned.
// Exhaustive checks every pair and exists to validate Best.
//
// Complexity (m outcomes)
//
//   - Best:       O(m log m) sort + O(k·m) worst-case scan, usually far less.
//   - Exhaustive: O(m²).
package pairing
