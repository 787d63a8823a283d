// Package sparsematrix implements the sparse matrix of the osm library: an
// ordered sequence of same-orientation chains plus incremental bookkeeping of
// which positions are non-empty.
//
// What:
//
//   - SparseMatrix[T] stores one chain per row (Row orientation) or per
//     column (Column orientation); all chains share the matrix's tag.
//   - A bit-packed per-chain flag word records chains explicitly cleared via
//     ZeroChain, distinct from chains that merely happen to be empty.
//   - An ordered non-empty index lets traversals skip fully-empty chains
//     without scanning the whole backing sequence; default iteration remains
//     the full sequence in storage (FIFO) order.
//   - Algebra: chain-wise Add/Sub/Scale, two matrix-product orientations,
//     outer products, transpose, and submatrix extraction by index removal.
//   - GetRow/GetColumn/SetRow/SetColumn work against either storage
//     orientation; opposite-orientation access gathers or scatters across
//     every chain.
//
// Why:
//
//   - Boundary-matrix pipelines need matrix algebra whose cost tracks the
//     number of present coefficients, not the nominal dimensions.
//   - Keeping the vector algebra in package chain leaves this package free to
//     focus on sequence bookkeeping and product composition.
//
// Complexity (n = chain count, per-chain costs from package chain):
//
//   - ChainAt / Get / Set / ZeroChain:  O(1) expected.
//   - Same-orientation Get/Set row/col: O(1) / O(NNZ(chain)).
//   - Opposite-orientation Get/Set:     O(n).
//   - Add / Sub / Scale / Transpose:    sum of per-chain costs.
//   - MulColumns / MulRows:             proportional to present entry pairs.
//   - RemoveIndices:                    O(total NNZ + n·log len(indices)).
//
// Errors:
//
//   - ErrNilMatrix / ErrNilChain: nil operand.
//   - ErrOrientationMismatch: operand tags incompatible with the operation.
//   - ErrShapeMismatch: chain counts or inner dimensions disagree.
//   - ErrZeroScalar: scalar multiplication by zero.
//   - ErrIndexOutOfRange: chain access outside [0, ChainCount()).
//   - ErrNegativeChainCount / ErrNonPositiveBound / ErrBadOrientation:
//     invalid construction options.
//
// Matrices are not safe for concurrent use; the caller owns the
// single-writer discipline.
package sparsematrix
