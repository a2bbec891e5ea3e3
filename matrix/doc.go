// SPDX-License-Identifier: MIT

// Package matrix provides the dense hop-count distance matrix used to collapse a
// tunnel network into all-pairs shortest distances.
//
// What
//
//   - Dense: a square, row-major buffer of int hop counts.
//   - Unreachable: the "no path" marker (math.MaxInt), never added to.
//   - FloydWarshall: in-place all-pairs closure with a fixed k → i → j loop order.
//   - Restrict: sub-matrix extraction used when compacting a network.
//   - Validators: symmetry and zero-diagonal checks.
//
// Policy
//
//	Edge weights are uniform (1 per tunnel) and non-negative, so the closure is
//	exact for every pair. Relaxation never adds through an Unreachable leg, which
//	keeps the int arithmetic free of overflow.
//
// Complexity
//
//   - FloydWarshall: Time O(n³), extra space O(1).
//   - Restrict:      Time O(k²) for k selected indices.
//
// Errors
//
//   - ErrNilMatrix        nil *Dense passed to a kernel or validator.
//   - ErrBadShape         non-positive order on construction.
//   - ErrOutOfRange       index outside [0, n) in At/Set/Restrict.
//   - ErrAsymmetry        ValidateSymmetric found d[i,j] != d[j,i].
//   - ErrNonZeroDiagonal  ValidateZeroDiagonal found d[i,i] != 0.
package matrix
