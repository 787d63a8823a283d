// Package chain implements the sparse vector underlying the osm library:
// an orientation-tagged map from non-negative integer indices to numeric
// coefficients, where an absent index means the zero value.
//
// What:
//
//   - Chain[T] stores only present entries; memory is O(NNZ), never O(dim).
//   - Every chain carries a ROW or COLUMN orientation fixed at construction;
//     Transpose returns a fresh chain with the opposite tag.
//   - An optional bound (WithBound) declares the valid index range. The bound
//     is advisory for reads — out-of-bound reads return the zero value, never
//     an error — and writes are deliberately unchecked.
//   - Algebra: Add, Sub, Scale, Dot, RemoveIndices, plus in-place variants.
//
// Why:
//
//   - Computational topology and graph pipelines manipulate boundary chains
//     with millions of nominal slots and a handful of coefficients.
//   - Elementwise cost proportional to present entries is the library's
//     central performance contract.
//
// Complexity:
//
//   - Get / Set / Remove:      O(1) expected.
//   - Add / Sub:               O(NNZ(a) + NNZ(b)).
//   - Scale / Transpose / Clone: O(NNZ).
//   - Dot:                     O(min(NNZ(row), NNZ(column))).
//   - RemoveIndices:           O(NNZ + len(indices)).
//
// Errors:
//
//   - ErrNilChain: a nil *Chain operand was passed to an operation.
//   - ErrOrientationMismatch: binary operation over differently tagged chains.
//   - ErrZeroScalar: Scale invoked with a zero scalar.
//   - ErrNonPositiveBound: WithBound given a bound ≤ 0.
//   - ErrBadOrientation: constructor given a tag other than Row or Column.
//
// Chains are not safe for concurrent mutation; the caller owns the
// single-writer discipline.
package chain
