package sparsematrix_test

import (
	"testing"

	"github.com/katalvlaran/osm/chain"
	"github.com/katalvlaran/osm/sparsematrix"
)

// benchMatrix builds a count-chain matrix with nnz entries per chain, spread
// with the given stride so the nominal dimension grows without adding
// entries.
func benchMatrix(b *testing.B, orient chain.Orientation, count, nnz, stride int) *sparsematrix.SparseMatrix[float64] {
	b.Helper()
	m, err := sparsematrix.New[float64](orient, sparsematrix.WithChainCount(count))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for i := 0; i < count; i++ {
		for j := 0; j < nnz; j++ {
			if err := m.Set(i, j*stride, float64(i*nnz+j)+0.5); err != nil {
				b.Fatalf("Set failed: %v", err)
			}
		}
	}

	return m
}

// benchmarkAdd runs matrix addition over two count×(nnz·stride) operands.
func benchmarkAdd(b *testing.B, count, nnz, stride int) {
	x := benchMatrix(b, chain.Row, count, nnz, stride)
	y := benchMatrix(b, chain.Row, count, nnz, stride+1)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := sparsematrix.Add(x, y); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// BenchmarkAdd_Dense benchmarks 100 chains of 100 adjacent entries.
func BenchmarkAdd_Dense(b *testing.B) { benchmarkAdd(b, 100, 100, 1) }

// BenchmarkAdd_Sparse benchmarks the same entry count spread over a 100k
// nominal dimension; cost must track entries, not dimension.
func BenchmarkAdd_Sparse(b *testing.B) { benchmarkAdd(b, 100, 100, 1000) }

// BenchmarkMulColumns benchmarks the outer-product product formulation.
func BenchmarkMulColumns(b *testing.B) {
	x := benchMatrix(b, chain.Column, 50, 20, 3)
	y := benchMatrix(b, chain.Row, 50, 20, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparsematrix.MulColumns(x, y); err != nil {
			b.Fatalf("MulColumns failed: %v", err)
		}
	}
}

// BenchmarkMulRows benchmarks the dot-product product formulation.
func BenchmarkMulRows(b *testing.B) {
	x := benchMatrix(b, chain.Row, 50, 20, 3)
	y := benchMatrix(b, chain.Column, 50, 20, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparsematrix.MulRows(x, y); err != nil {
			b.Fatalf("MulRows failed: %v", err)
		}
	}
}

// BenchmarkRemoveIndices benchmarks submatrix extraction with re-basing.
func BenchmarkRemoveIndices(b *testing.B) {
	m := benchMatrix(b, chain.Row, 200, 50, 2)
	drop := make([]int, 0, 50)
	for i := 0; i < 200; i += 4 {
		drop = append(drop, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparsematrix.RemoveIndices(m, drop); err != nil {
			b.Fatalf("RemoveIndices failed: %v", err)
		}
	}
}
