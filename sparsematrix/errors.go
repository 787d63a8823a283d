package sparsematrix

import "errors"

// Sentinel errors for sparse matrix operations. Callers match with errors.Is.
var (
	// ErrNilMatrix indicates a nil *SparseMatrix operand.
	ErrNilMatrix = errors.New("sparsematrix: nil matrix")

	// ErrNilChain indicates a nil *chain.Chain operand.
	ErrNilChain = errors.New("sparsematrix: nil chain")

	// ErrOrientationMismatch indicates operands whose ROW/COLUMN tags are
	// incompatible with the requested operation.
	ErrOrientationMismatch = errors.New("sparsematrix: orientation mismatch")

	// ErrShapeMismatch indicates incompatible dimensions: elementwise
	// operations over differing chain counts, or products whose inner
	// dimensions disagree. Mismatched shapes always error; nothing is
	// silently truncated.
	ErrShapeMismatch = errors.New("sparsematrix: shape mismatch")

	// ErrZeroScalar indicates a scalar multiplication by zero.
	ErrZeroScalar = errors.New("sparsematrix: zero scalar")

	// ErrIndexOutOfRange indicates chain access outside [0, ChainCount()).
	// Matrix indexing is always bounds-checked, unlike chain indexing.
	ErrIndexOutOfRange = errors.New("sparsematrix: chain index out of range")

	// ErrNegativeChainCount indicates WithChainCount was given n < 0.
	ErrNegativeChainCount = errors.New("sparsematrix: chain count must be >= 0")

	// ErrNonPositiveBound indicates WithBound was given a bound ≤ 0.
	ErrNonPositiveBound = errors.New("sparsematrix: bound must be > 0")

	// ErrBadOrientation indicates an orientation other than Row or Column.
	ErrBadOrientation = errors.New("sparsematrix: orientation must be Row or Column")
)
