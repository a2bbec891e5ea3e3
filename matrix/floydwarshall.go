// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over hop counts with a deterministic loop order.
//
// Contract:
//   - Diagonal must be 0 and missing edges must be Unreachable before calling.

package matrix

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in-place on d:
//
//	d[i,j] = min(d[i,j], d[i,k] + d[k,j]) for every intermediate k.
//
// Legs equal to Unreachable are skipped, so the sum never overflows.
// Loop order is fixed (k → i → j). Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	n := d.n
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
