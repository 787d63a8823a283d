package chain

import "errors"

// Sentinel errors for chain operations. Callers match with errors.Is.
var (
	// ErrNilChain indicates a nil *Chain operand.
	ErrNilChain = errors.New("chain: nil chain")

	// ErrOrientationMismatch indicates a binary elementwise operation over
	// chains whose orientation tags differ, or a product whose operands do
	// not carry the required ROW/COLUMN roles.
	ErrOrientationMismatch = errors.New("chain: orientation mismatch")

	// ErrZeroScalar indicates a scalar multiplication by zero. A zero scalar
	// is rejected rather than silently producing an empty chain, to surface
	// likely caller mistakes.
	ErrZeroScalar = errors.New("chain: zero scalar")

	// ErrNonPositiveBound indicates WithBound was given a bound ≤ 0.
	ErrNonPositiveBound = errors.New("chain: bound must be > 0")

	// ErrBadOrientation indicates an orientation value other than Row or Column.
	ErrBadOrientation = errors.New("chain: orientation must be Row or Column")
)
