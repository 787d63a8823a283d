// Package osm is an in-memory toolkit for sparse linear algebra over an
// arbitrary numeric coefficient type — orientation-tagged sparse vectors
// ("chains") and the sparse matrices built from them.
//
// 🚀 What is osm?
//
//	An Optimised Sparse Matrix library that brings together:
//		• Chains: ROW/COLUMN-tagged sparse vectors over integer indices
//		• Vector algebra: add, subtract, scale, dot product, transpose
//		• Matrix algebra: chain-wise add/sub/scale, two product orientations
//		• Outer products: build a matrix from a column chain and a row chain
//		• Submatrix extraction: index removal with consistent re-basing
//		• Orientation-transparent row/column access on any storage layout
//
// ✨ Why choose osm?
//
//   - Sparsity-proportional cost – operations touch present entries, never
//     the nominal dimension
//   - Explicit algebra – every value-returning op yields a fresh, unaliased
//     result; every failure is a sentinel error, never a panic
//   - Generic coefficients – any integer, float, or complex type works
//   - Pure Go – no cgo
//
// Under the hood, everything is organized in two subpackages:
//
//	chain/        — the sparse vector: entries, orientation, vector algebra
//	sparsematrix/ — ordered chains + non-empty bookkeeping + matrix algebra
//
// Quick ASCII example:
//
//	    column {0:2, 2:5}  ⊗  row {0:3, 1:4}
//
//	        ⎡ 6  8 ⎤
//	    =   ⎢ .  . ⎥        (four entries, nothing stored at row 1)
//	        ⎣15 20 ⎦
//
// Dive into the per-package docs for contracts, complexity notes, and the
// full error taxonomy.
//
//	go get github.com/katalvlaran/osm
package osm
