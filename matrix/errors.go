// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels (optionally wrapped with the operation name)
// and tests match them via errors.Is. No kernel panics on caller input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when the requested order is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAsymmetry signals d[i,j] != d[j,i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals d[i,i] != 0 for some i.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")
)

// matrixErrorf tags err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
