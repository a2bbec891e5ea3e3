package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/matrix"
)

func TestNewDense_BadShape(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := matrix.NewDense(n)
		assert.ErrorIs(t, err, matrix.ErrBadShape, "n=%d", n)
		_, err = matrix.NewDistances(n)
		assert.ErrorIs(t, err, matrix.ErrBadShape, "n=%d", n)
	}
}

func TestNewDistances_Fixture(t *testing.T) {
	d, err := matrix.NewDistances(3)
	require.NoError(t, err)
	require.Equal(t, 3, d.Order())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 0, v)
			} else {
				assert.Equal(t, matrix.Unreachable, v)
			}
		}
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	d, err := matrix.NewDense(2)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 0, 7))
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		_, err = d.At(c[0], c[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		assert.ErrorIs(t, d.Set(c[0], c[1], 1), matrix.ErrOutOfRange)
	}
	_, err = d.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	d, _ := matrix.NewDense(2)
	_ = d.Set(0, 1, 4)
	c := d.Clone()
	_ = c.Set(0, 1, 9)

	v, _ := d.At(0, 1)
	assert.Equal(t, 4, v)
	row, err := c.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 9}, row)
}

func TestDense_Restrict(t *testing.T) {
	d, _ := matrix.NewDense(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = d.Set(i, j, 10*i+j)
		}
	}

	// Permuted selection: node 2 first, then node 0.
	r, err := d.Restrict([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{22, 20, 2, 0}, r.Flat())

	_, err = d.Restrict([]int{0, 3})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.Restrict(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	var nilD *matrix.Dense
	_, err = nilD.Restrict([]int{0})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_String(t *testing.T) {
	d, _ := matrix.NewDistances(2)
	assert.Equal(t, "[0, ∞]\n[∞, 0]\n", d.String())
}
