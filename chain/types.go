// Package chain defines core types, options, and constructors for the
// sparse vector ("chain") subpackage of github.com/katalvlaran/osm.
package chain

import (
	"golang.org/x/exp/constraints"
)

// Coefficient is the set of types a chain may hold: any integer, float, or
// complex type. The algebra only ever uses +, -, * and the zero value, so a
// coefficient behaves as an opaque ring element.
type Coefficient interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Orientation tags a chain as a row vector or a column vector. The tag fixes
// the chain's algebraic role: columns are left operands of outer products,
// rows are left operands of dot products.
type Orientation int

const (
	// Column marks a column chain (flag 0b01).
	Column Orientation = 0b01
	// Row marks a row chain (flag 0b10).
	Row Orientation = 0b10
)

// String returns "row" or "column" for a valid orientation.
func (o Orientation) String() string {
	if o == Row {
		return "row"
	}

	return "column"
}

// valid reports whether o is one of the two defined tags.
func (o Orientation) valid() bool {
	return o == Row || o == Column
}

// Chain is a sparse vector over non-negative integer indices. An absent index
// reads as the zero value of T. A present entry keeps whatever the caller
// last wrote, including an explicit zero; only Remove/RemoveIndices delete
// entries, and only exact cancellation inside Add/Sub collapses them.
type Chain[T Coefficient] struct {
	entries map[int]T
	orient  Orientation
	bound   int // 0 means unbounded
}

// Option configures a chain at construction time.
type Option func(*options)

type options struct {
	bound    int
	boundSet bool
}

// WithBound declares an upper limit on valid indices. Reads at or past the
// bound return the zero value; writes remain unchecked. The bound must be
// positive or New returns ErrNonPositiveBound.
func WithBound(n int) Option {
	return func(o *options) {
		o.bound = n
		o.boundSet = true
	}
}

// New constructs an empty chain with the given orientation.
// Returns ErrBadOrientation for an undefined tag and ErrNonPositiveBound
// when WithBound was given a non-positive bound.
// Complexity: O(1).
func New[T Coefficient](orient Orientation, opts ...Option) (*Chain[T], error) {
	if !orient.valid() {
		return nil, ErrBadOrientation
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.boundSet && o.bound <= 0 {
		return nil, ErrNonPositiveBound
	}

	return &Chain[T]{
		entries: make(map[int]T),
		orient:  orient,
		bound:   o.bound,
	}, nil
}
