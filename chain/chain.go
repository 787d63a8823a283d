package chain

import "sort"

// Orientation returns the chain's tag, fixed at construction.
func (c *Chain[T]) Orientation() Orientation { return c.orient }

// Bound returns the declared index bound, or 0 for an unbounded chain.
func (c *Chain[T]) Bound() int { return c.bound }

// IsRow reports whether the chain is row-oriented.
func (c *Chain[T]) IsRow() bool { return c.orient == Row }

// IsColumn reports whether the chain is column-oriented.
func (c *Chain[T]) IsColumn() bool { return c.orient == Column }

// NNZ returns the number of present entries.
func (c *Chain[T]) NNZ() int { return len(c.entries) }

// IsEmpty reports whether the chain has no present entries.
func (c *Chain[T]) IsEmpty() bool { return len(c.entries) == 0 }

// Get returns the coefficient stored at index i, or the zero value when i is
// absent, negative, or at/past a declared bound. No boundary check is
// performed unless the chain was constructed with a bound, and even then an
// out-of-bound read degrades to zero rather than erroring.
// Complexity: O(1) expected.
func (c *Chain[T]) Get(i int) T {
	var zero T
	if i < 0 {
		return zero
	}
	if c.bound > 0 && i >= c.bound {
		return zero
	}

	return c.entries[i]
}

// Has reports whether index i holds a present entry, explicit zeros
// included. Mirrors Get's bound handling: out-of-bound and negative indices
// report false.
// Complexity: O(1) expected.
func (c *Chain[T]) Has(i int) bool {
	if i < 0 || (c.bound > 0 && i >= c.bound) {
		return false
	}
	_, ok := c.entries[i]

	return ok
}

// Set inserts or overwrites the entry at index i unconditionally, even past
// any declared bound. Writes are never boundary-checked.
// Complexity: O(1) expected.
func (c *Chain[T]) Set(i int, v T) {
	c.entries[i] = v
}

// Remove deletes the entry at index i; removing an absent index is a no-op.
// Complexity: O(1) expected.
func (c *Chain[T]) Remove(i int) {
	delete(c.entries, i)
}

// ForEach calls fn for every present (index, coefficient) pair in unspecified
// order, stopping early when fn returns false. A fresh call restarts the
// iteration. The chain must not be mutated while iterating.
// Complexity: O(NNZ).
func (c *Chain[T]) ForEach(fn func(i int, v T) bool) {
	for i, v := range c.entries {
		if !fn(i, v) {
			return
		}
	}
}

// Indices returns all present indices in ascending order. Handy when a
// deterministic traversal is needed over the unordered entry map.
// Complexity: O(NNZ log NNZ).
func (c *Chain[T]) Indices() []int {
	out := make([]int, 0, len(c.entries))
	for i := range c.entries {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep copy of the chain: same entries, orientation and
// bound, no shared storage.
// Complexity: O(NNZ).
func (c *Chain[T]) Clone() *Chain[T] {
	cp := &Chain[T]{
		entries: make(map[int]T, len(c.entries)),
		orient:  c.orient,
		bound:   c.bound,
	}
	for i, v := range c.entries {
		cp.entries[i] = v
	}

	return cp
}

// Assign deep-copies other into the receiver, replacing entries, orientation
// and bound. Orientation is copied as-is: assignment does not require
// matching tags. Returns ErrNilChain when other is nil.
// Complexity: O(NNZ(other)).
func (c *Chain[T]) Assign(other *Chain[T]) error {
	if other == nil {
		return ErrNilChain
	}
	c.orient = other.orient
	c.bound = other.bound
	c.entries = make(map[int]T, len(other.entries))
	for i, v := range other.entries {
		c.entries[i] = v
	}

	return nil
}

// Transpose returns a new chain with identical entries and bound and the
// opposite orientation tag. The receiver is untouched.
// Complexity: O(NNZ).
func (c *Chain[T]) Transpose() *Chain[T] {
	t := c.Clone()
	if c.orient == Row {
		t.orient = Column
	} else {
		t.orient = Row
	}

	return t
}

// Equal reports value equality of two chains: same orientation and exactly
// the same present entries with equal coefficients. Explicit zero entries
// count as present. A declared bound does not participate in equality.
// Nil chains are equal only to nil.
// Complexity: O(NNZ).
func Equal[T Coefficient](a, b *Chain[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.orient != b.orient || len(a.entries) != len(b.entries) {
		return false
	}
	for i, av := range a.entries {
		bv, ok := b.entries[i]
		if !ok || av != bv {
			return false
		}
	}

	return true
}
