package sparsematrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/osm/chain"
	"github.com/katalvlaran/osm/sparsematrix"
)

// newMatrix builds a matrix of the given orientation and chain count,
// failing the test on construction errors.
func newMatrix(t *testing.T, orient chain.Orientation, count int, opts ...sparsematrix.Option) *sparsematrix.SparseMatrix[int] {
	t.Helper()
	opts = append([]sparsematrix.Option{sparsematrix.WithChainCount(count)}, opts...)
	m, err := sparsematrix.New[int](orient, opts...)
	require.NoError(t, err)

	return m
}

// newChain builds a chain from a literal entry map.
func newChain(t *testing.T, orient chain.Orientation, entries map[int]int) *chain.Chain[int] {
	t.Helper()
	c, err := chain.New[int](orient)
	require.NoError(t, err)
	for i, v := range entries {
		c.Set(i, v)
	}

	return c
}

// fill writes literal cells (chain position → offset → value) into m.
func fill(t *testing.T, m *sparsematrix.SparseMatrix[int], cells map[int]map[int]int) {
	t.Helper()
	for i, row := range cells {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
}

// toDense materializes m as rows×cols in conventional (row, column)
// coordinates regardless of storage orientation, for cross-checking products
// against naive dense arithmetic.
func toDense(t *testing.T, m *sparsematrix.SparseMatrix[int], rows, cols int) [][]int {
	t.Helper()
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
		for j := range out[i] {
			var v int
			var err error
			if m.IsRow() {
				v, err = m.Get(i, j)
			} else {
				v, err = m.Get(j, i)
			}
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// denseMul is the naive reference product for cross-checks.
func denseMul(a, b [][]int) [][]int {
	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}
