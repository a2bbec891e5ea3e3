// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Unreachable marks a pair of nodes with no connecting path.
const Unreachable = math.MaxInt

// Dense is a square row-major matrix of hop counts.
// n is the order, and data holds n*n elements in row-major order.
type Dense struct {
	n    int   // order (rows == cols)
	data []int // flat backing storage, len == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}

	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// NewDistances creates an n×n distance fixture ready for FloydWarshall:
// zero on the diagonal, Unreachable everywhere else.
func NewDistances(n int) (*Dense, error) {
	d, err := NewDense(n)
	if err != nil {
		return nil, matrixErrorf("NewDistances", err)
	}
	var i int
	for i = range d.data {
		d.data[i] = Unreachable
	}
	for i = 0; i < n; i++ {
		d.data[i*n+i] = 0
	}

	return d, nil
}

// Order returns the number of rows (== columns).
func (m *Dense) Order() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]int, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Flat returns a copy of the row-major buffer. Hot loops prefetch this once
// instead of paying a bounds-checked At per lookup.
func (m *Dense) Flat() []int {
	out := make([]int, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{n: m.n, data: m.Flat()}
}

// Restrict returns the k×k sub-matrix selected by idx, in idx order:
// out[a,b] = m[idx[a], idx[b]]. Indices may be permuted but must be in range.
// Complexity: O(k²).
func (m *Dense) Restrict(idx []int) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Restrict", ErrNilMatrix)
	}
	out, err := NewDense(len(idx))
	if err != nil {
		return nil, matrixErrorf("Restrict", err)
	}
	var a, b int
	for a = range idx {
		if idx[a] < 0 || idx[a] >= m.n {
			return nil, fmt.Errorf("Restrict: index %d: %w", idx[a], ErrOutOfRange)
		}
	}
	for a = range idx {
		src := idx[a] * m.n
		dst := a * out.n
		for b = range idx {
			out.data[dst+b] = m.data[src+idx[b]]
		}
	}

	return out, nil
}

// String renders rows with "∞" for Unreachable cells.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if v := m.data[i*m.n+j]; v == Unreachable {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
