// Package chain: value-returning and in-place vector algebra.
//
// Every value-returning operation validates its operands fully before
// allocating the result; every in-place operation validates before the first
// mutation. No partial state is observable after a failure, and results never
// alias their operands.
package chain

// Add returns a new chain holding the elementwise sum of a and b over the
// union of their present indices. When both operands hold an index and the
// coefficients cancel exactly, the entry is dropped from the result, so that
// Sub(Add(a, b), b) reproduces a's present entries. Entries contributed by a
// single operand are copied verbatim, explicit zeros included.
// The result keeps the operands' shared orientation and a's bound.
// Returns ErrNilChain on a nil operand and ErrOrientationMismatch when the
// tags differ.
// Complexity: O(NNZ(a) + NNZ(b)).
func Add[T Coefficient](a, b *Chain[T]) (*Chain[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	mergeInto(out, b, false)

	return out, nil
}

// Sub returns a new chain holding the elementwise difference a - b over the
// union of present indices, with the same cancellation and validation rules
// as Add.
// Complexity: O(NNZ(a) + NNZ(b)).
func Sub[T Coefficient](a, b *Chain[T]) (*Chain[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	mergeInto(out, b, true)

	return out, nil
}

// Scale returns a new chain with every present coefficient multiplied by
// lambda. A zero scalar is rejected with ErrZeroScalar before any allocation,
// for empty and non-empty chains alike. Explicit zero entries stay present.
// Complexity: O(NNZ).
func Scale[T Coefficient](lambda T, v *Chain[T]) (*Chain[T], error) {
	var zero T
	if lambda == zero {
		return nil, ErrZeroScalar
	}
	if v == nil {
		return nil, ErrNilChain
	}
	out := &Chain[T]{
		entries: make(map[int]T, len(v.entries)),
		orient:  v.orient,
		bound:   v.bound,
	}
	for i, c := range v.entries {
		out.entries[i] = lambda * c
	}

	return out, nil
}

// Dot returns the inner product of a row chain and a column chain: the sum of
// row[i]*column[i] over indices present in both operands. An index absent in
// either contributes zero. The operands must carry their algebraic roles:
// row must be Row-tagged and column Column-tagged, otherwise
// ErrOrientationMismatch.
// Complexity: O(min(NNZ(row), NNZ(column))).
func Dot[T Coefficient](row, column *Chain[T]) (T, error) {
	var sum T
	if row == nil || column == nil {
		return sum, ErrNilChain
	}
	if !row.IsRow() || !column.IsColumn() {
		return sum, ErrOrientationMismatch
	}
	// Walk the smaller entry set, probe the larger.
	small, large := row, column
	if len(column.entries) < len(row.entries) {
		small, large = column, row
	}
	for i, sv := range small.entries {
		if lv, ok := large.entries[i]; ok {
			sum += sv * lv
		}
	}

	return sum, nil
}

// RemoveIndices returns a copy of v with every index in indices deleted.
// Indices absent from v are ignored; an empty list yields a plain copy,
// not an error.
// Complexity: O(NNZ(v) + len(indices)).
func RemoveIndices[T Coefficient](v *Chain[T], indices []int) (*Chain[T], error) {
	if v == nil {
		return nil, ErrNilChain
	}
	out := v.Clone()
	for _, i := range indices {
		delete(out.entries, i)
	}

	return out, nil
}

// AddAssign adds other into the receiver elementwise (receiver += other),
// with Add's validation and cancellation rules. The receiver is untouched
// on error.
// Complexity: O(NNZ(other)).
func (c *Chain[T]) AddAssign(other *Chain[T]) error {
	if err := validatePair(c, other); err != nil {
		return err
	}
	mergeInto(c, other, false)

	return nil
}

// SubAssign subtracts other from the receiver elementwise (receiver -= other),
// with Sub's validation and cancellation rules.
// Complexity: O(NNZ(other)).
func (c *Chain[T]) SubAssign(other *Chain[T]) error {
	if err := validatePair(c, other); err != nil {
		return err
	}
	mergeInto(c, other, true)

	return nil
}

// ScaleAssign multiplies every present coefficient of the receiver by lambda
// in place. A zero scalar is rejected with ErrZeroScalar before any mutation.
// Complexity: O(NNZ).
func (c *Chain[T]) ScaleAssign(lambda T) error {
	var zero T
	if lambda == zero {
		return ErrZeroScalar
	}
	for i, v := range c.entries {
		c.entries[i] = lambda * v
	}

	return nil
}

// RemoveIndicesAssign deletes every index in indices from the receiver.
// An empty list is a no-op.
// Complexity: O(len(indices)).
func (c *Chain[T]) RemoveIndicesAssign(indices []int) {
	for _, i := range indices {
		delete(c.entries, i)
	}
}

// validatePair gates every binary elementwise operation: nil first, then
// orientation, so the error priority is stable and testable.
func validatePair[T Coefficient](a, b *Chain[T]) error {
	if a == nil || b == nil {
		return ErrNilChain
	}
	if a.orient != b.orient {
		return ErrOrientationMismatch
	}

	return nil
}

// mergeInto folds other into dst: dst[i] op= other[i] over other's entries,
// where op is + or - depending on negate. Exact cancellation of an index
// present in both operands removes the entry.
func mergeInto[T Coefficient](dst, other *Chain[T], negate bool) {
	var zero T
	for i, ov := range other.entries {
		if negate {
			ov = -ov
		}
		dv, ok := dst.entries[i]
		if !ok {
			dst.entries[i] = ov

			continue
		}
		if sum := dv + ov; sum == zero {
			delete(dst.entries, i) // exact cancellation
		} else {
			dst.entries[i] = sum
		}
	}
}
