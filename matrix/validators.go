// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ValidateSymmetric checks d[i,j] == d[j,i] over the upper triangle.
// Returns ErrNilMatrix or a wrapped ErrAsymmetry naming the first bad pair.
func ValidateSymmetric(d *Dense) error {
	if d == nil {
		return matrixErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			if d.data[i*d.n+j] != d.data[j*d.n+i] {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks d[i,i] == 0 for every i.
func ValidateZeroDiagonal(d *Dense) error {
	if d == nil {
		return matrixErrorf("ValidateZeroDiagonal", ErrNilMatrix)
	}
	var i int
	for i = 0; i < d.n; i++ {
		if d.data[i*d.n+i] != 0 {
			return fmt.Errorf("ValidateZeroDiagonal: (%d,%d): %w", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}
