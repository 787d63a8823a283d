// Package sparsematrix: value-returning and in-place matrix algebra.
//
// Every operation validates operands fully before allocating a result, and
// every in-place variant validates before the first mutation, so no partial
// state is observable after a failure. Results never alias their operands.
package sparsematrix

import (
	"sort"

	"github.com/katalvlaran/osm/chain"
)

// Add returns a new matrix holding the chain-wise sum of a and b. Operands
// must share orientation (ErrOrientationMismatch) and chain count
// (ErrShapeMismatch — mismatched sizes always error, never truncate).
// Complexity: O(total NNZ of both operands).
func Add[T chain.Coefficient](a, b *SparseMatrix[T]) (*SparseMatrix[T], error) {
	return elementwise(a, b, chain.Add[T])
}

// Sub returns a new matrix holding the chain-wise difference a - b, with
// Add's validation rules.
// Complexity: O(total NNZ of both operands).
func Sub[T chain.Coefficient](a, b *SparseMatrix[T]) (*SparseMatrix[T], error) {
	return elementwise(a, b, chain.Sub[T])
}

// Scale returns a new matrix with every chain scaled by lambda. A zero
// scalar is rejected with ErrZeroScalar before any allocation.
// Complexity: O(total NNZ).
func Scale[T chain.Coefficient](lambda T, m *SparseMatrix[T]) (*SparseMatrix[T], error) {
	var zero T
	if lambda == zero {
		return nil, ErrZeroScalar
	}
	if m == nil {
		return nil, ErrNilMatrix
	}
	out := newResult[T](m.orient, len(m.chains), m.extent)
	for i, c := range m.chains {
		sc, err := chain.Scale(lambda, c)
		if err != nil {
			return nil, err
		}
		out.chains[i] = sc
		out.syncChain(i)
	}

	return out, nil
}

// MulColumns returns the column-oriented product of a column matrix and a row
// matrix, computed as the sum over the shared dimension k of outer products
// of a's k-th column and b's k-th row. The shared dimension is the chain
// count of both operands (ErrShapeMismatch when they differ). An entry (i,j)
// is present iff at least one term of its summation was non-zero, so exact
// cancellation across terms leaves an explicit zero entry.
// Complexity: proportional to the number of contributing entry pairs.
func MulColumns[T chain.Coefficient](a, b *SparseMatrix[T]) (*SparseMatrix[T], error) {
	var zero T
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if !a.IsColumn() || !b.IsRow() {
		return nil, ErrOrientationMismatch
	}
	if len(a.chains) != len(b.chains) {
		return nil, ErrShapeMismatch
	}
	out := newResult[T](chain.Column, b.secondaryExtent(), a.extent)
	for k := range a.chains {
		a.chains[k].ForEach(func(i int, av T) bool {
			b.chains[k].ForEach(func(j int, bv T) bool {
				term := av * bv
				if term == zero {
					return true // zero terms never create entries
				}
				out.growTo(j + 1)
				out.chains[j].Set(i, out.chains[j].Get(i)+term)

				return true
			})

			return true
		})
	}
	out.Reindex()

	return out, nil
}

// MulRows returns the row-oriented product of a row matrix and a column
// matrix, computed cell-by-cell as dot products of a's rows and b's columns.
// Inner dimensions are compared when both operands declared one via WithBound
// (ErrShapeMismatch on disagreement); undeclared extents stay advisory, like
// chain bounds. Presence follows the same rule as MulColumns.
// Complexity: O(ChainCount(a) · ChainCount(b) · min NNZ per pair).
func MulRows[T chain.Coefficient](a, b *SparseMatrix[T]) (*SparseMatrix[T], error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if !a.IsRow() || !b.IsColumn() {
		return nil, ErrOrientationMismatch
	}
	if a.extent > 0 && b.extent > 0 && a.extent != b.extent {
		return nil, ErrShapeMismatch
	}
	out := newResult[T](chain.Row, len(a.chains), len(b.chains))
	for i, row := range a.chains {
		for j, col := range b.chains {
			if sum, present := dotPresence(row, col); present {
				out.chains[i].Set(j, sum)
			}
		}
	}
	out.Reindex()

	return out, nil
}

// OuterProduct builds a column-oriented matrix from a column chain and a row
// chain: entry (i,j) = column[i] * row[j] for every pair of present indices
// whose product is non-zero. Index pairs where either operand is absent are
// never materialized.
// Complexity: O(NNZ(column) · NNZ(row)).
func OuterProduct[T chain.Coefficient](column, row *chain.Chain[T]) (*SparseMatrix[T], error) {
	var zero T
	if column == nil || row == nil {
		return nil, ErrNilChain
	}
	if !column.IsColumn() || !row.IsRow() {
		return nil, ErrOrientationMismatch
	}
	out := newResult[T](chain.Column, chainExtent(row), column.Bound())
	row.ForEach(func(j int, rv T) bool {
		column.ForEach(func(i int, cv T) bool {
			if term := cv * rv; term != zero {
				out.growTo(j + 1)
				out.chains[j].Set(i, term)
			}

			return true
		})

		return true
	})
	out.Reindex()

	return out, nil
}

// OuterProductRows is OuterProduct with a row-oriented result: one chain per
// present row index of column, same entries, same validation.
// Complexity: O(NNZ(column) · NNZ(row)).
func OuterProductRows[T chain.Coefficient](column, row *chain.Chain[T]) (*SparseMatrix[T], error) {
	var zero T
	if column == nil || row == nil {
		return nil, ErrNilChain
	}
	if !column.IsColumn() || !row.IsRow() {
		return nil, ErrOrientationMismatch
	}
	out := newResult[T](chain.Row, chainExtent(column), row.Bound())
	column.ForEach(func(i int, cv T) bool {
		row.ForEach(func(j int, rv T) bool {
			if term := cv * rv; term != zero {
				out.growTo(i + 1)
				out.chains[i].Set(j, term)
			}

			return true
		})

		return true
	})
	out.Reindex()

	return out, nil
}

// RemoveIndices returns a smaller matrix with every listed position dropped
// both as a chain and as an offset within every surviving chain. Surviving
// offsets and positions are re-based past the removals, keeping the result
// rectangular. Duplicate and negative indices are ignored; an empty list
// yields a plain copy.
// Complexity: O(total NNZ + ChainCount · log len(indices)).
func RemoveIndices[T chain.Coefficient](m *SparseMatrix[T], indices []int) (*SparseMatrix[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rm := normalizeIndices(indices)
	if len(rm) == 0 {
		return m.Clone(), nil
	}

	extent := m.extent
	if extent > 0 {
		extent -= sort.SearchInts(rm, extent)
	}
	out := &SparseMatrix[T]{
		state:  newFlagWord(len(m.chains)),
		orient: m.orient,
		extent: extent,
	}
	for i, c := range m.chains {
		if containsIndex(rm, i) {
			continue
		}
		out.chains = append(out.chains, rebaseChain(m, c, rm))
		if m.state.get(i) {
			out.state.set(len(out.chains) - 1)
		}
	}
	out.Reindex()

	return out, nil
}

// AddAssign adds other into the receiver chain-wise (receiver += other),
// with Add's validation rules. The receiver is untouched on error.
func (m *SparseMatrix[T]) AddAssign(other *SparseMatrix[T]) error {
	if err := validatePair(m, other); err != nil {
		return err
	}
	for i := range m.chains {
		if err := m.chains[i].AddAssign(other.chains[i]); err != nil {
			return err
		}
		m.touch(i)
	}

	return nil
}

// SubAssign subtracts other from the receiver chain-wise (receiver -= other),
// with Sub's validation rules.
func (m *SparseMatrix[T]) SubAssign(other *SparseMatrix[T]) error {
	if err := validatePair(m, other); err != nil {
		return err
	}
	for i := range m.chains {
		if err := m.chains[i].SubAssign(other.chains[i]); err != nil {
			return err
		}
		m.touch(i)
	}

	return nil
}

// ScaleAssign scales every chain of the receiver by lambda in place. A zero
// scalar is rejected with ErrZeroScalar before any mutation. Presence of
// entries never changes, so no bookkeeping moves.
func (m *SparseMatrix[T]) ScaleAssign(lambda T) error {
	var zero T
	if lambda == zero {
		return ErrZeroScalar
	}
	for _, c := range m.chains {
		if err := c.ScaleAssign(lambda); err != nil {
			return err
		}
	}

	return nil
}

// RemoveIndicesAssign applies RemoveIndices to the receiver in place.
func (m *SparseMatrix[T]) RemoveIndicesAssign(indices []int) error {
	out, err := RemoveIndices(m, indices)
	if err != nil {
		return err
	}
	*m = *out

	return nil
}

// elementwise factors Add and Sub: validate, then fold op over chain pairs.
func elementwise[T chain.Coefficient](
	a, b *SparseMatrix[T],
	op func(x, y *chain.Chain[T]) (*chain.Chain[T], error),
) (*SparseMatrix[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, err
	}
	out := newResult[T](a.orient, len(a.chains), a.extent)
	for i := range a.chains {
		c, err := op(a.chains[i], b.chains[i])
		if err != nil {
			return nil, err
		}
		out.chains[i] = c
		out.syncChain(i)
	}

	return out, nil
}

// validatePair gates binary elementwise matrix operations: nil first, then
// orientation, then shape, so the error priority is stable and testable.
func validatePair[T chain.Coefficient](a, b *SparseMatrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.orient != b.orient {
		return ErrOrientationMismatch
	}
	if len(a.chains) != len(b.chains) {
		return ErrShapeMismatch
	}

	return nil
}

// newResult builds an all-empty matrix for operation results. Result chains
// are unbounded; the declared extent alone carries dimensional intent.
func newResult[T chain.Coefficient](orient chain.Orientation, count, extent int) *SparseMatrix[T] {
	m := &SparseMatrix[T]{
		chains: make([]*chain.Chain[T], count),
		state:  newFlagWord(count),
		orient: orient,
		extent: extent,
	}
	for i := range m.chains {
		m.chains[i] = m.freshChain(0)
	}

	return m
}

// growTo extends the backing sequence with fresh empty chains up to n.
// Needed when operand entries sit past a declared (advisory) bound.
func (m *SparseMatrix[T]) growTo(n int) {
	for len(m.chains) < n {
		m.chains = append(m.chains, m.freshChain(0))
	}
}

// touch repairs bookkeeping for position i after an in-place chain mutation:
// the non-empty index is resynced and a repopulated chain sheds its
// explicitly-cleared flag.
func (m *SparseMatrix[T]) touch(i int) {
	m.syncChain(i)
	if !m.chains[i].IsEmpty() {
		m.state.clear(i)
	}
}

// dotPresence computes a sparse dot product together with the presence rule
// for matrix products: present iff at least one index pair produced a
// non-zero term.
func dotPresence[T chain.Coefficient](row, col *chain.Chain[T]) (sum T, present bool) {
	var zero T
	small, large := row, col
	if col.NNZ() < row.NNZ() {
		small, large = col, row
	}
	small.ForEach(func(i int, sv T) bool {
		if large.Has(i) {
			if term := sv * large.Get(i); term != zero {
				sum += term
				present = true
			}
		}

		return true
	})

	return sum, present
}

// chainExtent resolves a chain's nominal length: its declared bound or the
// widest present index + 1, whichever is larger.
func chainExtent[T chain.Coefficient](c *chain.Chain[T]) int {
	n := c.Bound()
	c.ForEach(func(i int, _ T) bool {
		if i+1 > n {
			n = i + 1
		}

		return true
	})

	return n
}

// normalizeIndices sorts, deduplicates, and drops negative removal indices.
func normalizeIndices(indices []int) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	dedup := out[:0]
	for i, v := range out {
		if i == 0 || v != out[i-1] {
			dedup = append(dedup, v)
		}
	}

	return dedup
}

// containsIndex reports membership in a sorted removal list.
func containsIndex(rm []int, i int) bool {
	pos := sort.SearchInts(rm, i)

	return pos < len(rm) && rm[pos] == i
}

// rebaseChain copies c without the removed offsets, shifting every surviving
// offset down by the number of removals below it. A declared bound shrinks
// the same way and is dropped when nothing of it survives.
func rebaseChain[T chain.Coefficient](m *SparseMatrix[T], c *chain.Chain[T], rm []int) *chain.Chain[T] {
	bound := c.Bound()
	if bound > 0 {
		bound -= sort.SearchInts(rm, bound)
	}
	out := m.freshChain(bound)
	c.ForEach(func(i int, v T) bool {
		if !containsIndex(rm, i) {
			out.Set(i-sort.SearchInts(rm, i), v)
		}

		return true
	})

	return out
}
