package sparsematrix

import (
	"sort"

	"github.com/katalvlaran/osm/chain"
)

// ChainCount returns the number of chains in the backing sequence.
func (m *SparseMatrix[T]) ChainCount() int { return len(m.chains) }

// Orientation returns the matrix's tag; all chains share it.
func (m *SparseMatrix[T]) Orientation() chain.Orientation { return m.orient }

// IsRow reports whether chains represent rows.
func (m *SparseMatrix[T]) IsRow() bool { return m.orient == chain.Row }

// IsColumn reports whether chains represent columns.
func (m *SparseMatrix[T]) IsColumn() bool { return m.orient == chain.Column }

// Dims returns the chain count and the secondary extent: the declared bound
// when WithBound was used, otherwise the widest present index + 1 across all
// chains (their own bounds included).
// Complexity: O(1) with a declared bound, O(total NNZ) otherwise.
func (m *SparseMatrix[T]) Dims() (chains, extent int) {
	return len(m.chains), m.secondaryExtent()
}

// NonEmpty returns the ascending positions whose chain currently holds at
// least one entry. The slice is a copy; mutating it does not affect the
// matrix.
func (m *SparseMatrix[T]) NonEmpty() []int {
	out := make([]int, len(m.nonEmpty))
	copy(out, m.nonEmpty)

	return out
}

// ChainAt returns the live chain at position i, bounds-checked. Mutating the
// chain through the returned handle bypasses the matrix's bookkeeping; call
// Reindex afterwards, or mutate through Set/Remove/SetChainAt instead.
// Complexity: O(1).
func (m *SparseMatrix[T]) ChainAt(i int) (*chain.Chain[T], error) {
	if err := m.checkIndex(i); err != nil {
		return nil, err
	}

	return m.chains[i], nil
}

// SetChainAt replaces the chain at position i with a deep copy of c.
// The chain must carry the matrix's orientation. Bounds-checked.
// Complexity: O(NNZ(c)).
func (m *SparseMatrix[T]) SetChainAt(i int, c *chain.Chain[T]) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	if c == nil {
		return ErrNilChain
	}
	if c.Orientation() != m.orient {
		return ErrOrientationMismatch
	}
	m.chains[i] = c.Clone()
	m.state.clear(i)
	m.syncChain(i)

	return nil
}

// Get returns the coefficient at (i, j): chain position i, offset j within
// the chain. The chain position is bounds-checked; the offset keeps the
// chain's unchecked read semantics.
// Complexity: O(1) expected.
func (m *SparseMatrix[T]) Get(i, j int) (T, error) {
	var zero T
	if err := m.checkIndex(i); err != nil {
		return zero, err
	}

	return m.chains[i].Get(j), nil
}

// Set writes the coefficient at (i, j), repopulating the chain's cleared
// flag and the non-empty index synchronously. The chain position is
// bounds-checked; the offset is deliberately unchecked, matching chain.Set.
// Complexity: O(1) expected amortized.
func (m *SparseMatrix[T]) Set(i, j int, v T) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	m.chains[i].Set(j, v)
	m.state.clear(i)
	m.syncChain(i)

	return nil
}

// Remove deletes the entry at (i, j), keeping the non-empty index in sync.
// The chain position is bounds-checked; removing an absent offset is a no-op.
// Complexity: O(1) expected amortized.
func (m *SparseMatrix[T]) Remove(i, j int) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	m.chains[i].Remove(j)
	m.syncChain(i)

	return nil
}

// ZeroChain empties the chain at position i and marks it explicitly cleared
// in the per-chain flag word. An already-empty chain can be marked too; the
// flag records caller intent, not literal emptiness.
// Complexity: O(1).
func (m *SparseMatrix[T]) ZeroChain(i int) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	m.chains[i] = m.freshChain(m.chains[i].Bound())
	m.state.set(i)
	m.syncChain(i)

	return nil
}

// WasCleared reports whether chain i was explicitly cleared via ZeroChain
// (or WithZeroed) and has not been repopulated since. Distinct from
// IsEmpty: a never-touched chain is empty but not cleared.
func (m *SparseMatrix[T]) WasCleared(i int) (bool, error) {
	if err := m.checkIndex(i); err != nil {
		return false, err
	}

	return m.state.get(i), nil
}

// GetRow returns row i. On a row-oriented matrix this is direct chain access
// (a live handle, bounds-checked against the chain count). On a
// column-oriented matrix the row is assembled as a fresh Row chain by probing
// every non-empty column at offset i, bounds-checked against the secondary
// extent.
// Complexity: O(1) same-orientation, O(chain count) otherwise.
func (m *SparseMatrix[T]) GetRow(i int) (*chain.Chain[T], error) {
	if m.IsRow() {
		return m.ChainAt(i)
	}

	return m.gather(i, chain.Row)
}

// GetColumn returns column i, symmetrically to GetRow: direct chain access on
// a column-oriented matrix, assembled as a fresh Column chain on a
// row-oriented one.
// Complexity: O(1) same-orientation, O(chain count) otherwise.
func (m *SparseMatrix[T]) GetColumn(i int) (*chain.Chain[T], error) {
	if m.IsColumn() {
		return m.ChainAt(i)
	}

	return m.gather(i, chain.Column)
}

// SetRow writes row i from a Row-tagged chain. On a row-oriented matrix the
// chain replaces position i (as SetChainAt). On a column-oriented matrix every
// coefficient of c is scattered to offset i of the corresponding column chain,
// and columns where c holds no entry get offset i cleared; coefficients at
// indices beyond the chain count have no orthogonal chain and are dropped.
// Complexity: O(NNZ(c)) same-orientation, O(chain count) otherwise.
func (m *SparseMatrix[T]) SetRow(i int, c *chain.Chain[T]) error {
	if c == nil {
		return ErrNilChain
	}
	if !c.IsRow() {
		return ErrOrientationMismatch
	}
	if m.IsRow() {
		return m.SetChainAt(i, c)
	}

	return m.scatter(i, c)
}

// SetColumn writes column i from a Column-tagged chain, symmetrically to
// SetRow.
// Complexity: O(NNZ(c)) same-orientation, O(chain count) otherwise.
func (m *SparseMatrix[T]) SetColumn(i int, c *chain.Chain[T]) error {
	if c == nil {
		return ErrNilChain
	}
	if !c.IsColumn() {
		return ErrOrientationMismatch
	}
	if m.IsColumn() {
		return m.SetChainAt(i, c)
	}

	return m.scatter(i, c)
}

// ForEach calls fn for every chain in storage (FIFO) order, empty chains
// included, stopping early when fn returns false. Handles are live: mutation
// through them requires a Reindex.
// Complexity: O(chain count).
func (m *SparseMatrix[T]) ForEach(fn func(i int, c *chain.Chain[T]) bool) {
	for i, c := range m.chains {
		if !fn(i, c) {
			return
		}
	}
}

// ForEachReverse is ForEach in reverse storage order.
func (m *SparseMatrix[T]) ForEachReverse(fn func(i int, c *chain.Chain[T]) bool) {
	for i := len(m.chains) - 1; i >= 0; i-- {
		if !fn(i, m.chains[i]) {
			return
		}
	}
}

// ForEachNonEmpty calls fn for every non-empty chain in ascending position
// order, skipping empty chains via the non-empty index instead of scanning
// the backing sequence.
// Complexity: O(len(NonEmpty())).
func (m *SparseMatrix[T]) ForEachNonEmpty(fn func(i int, c *chain.Chain[T]) bool) {
	for _, i := range m.nonEmpty {
		if !fn(i, m.chains[i]) {
			return
		}
	}
}

// Reindex rebuilds the non-empty index from scratch and drops the cleared
// flag of any chain that turns out to hold entries. Needed only after direct
// mutation through live chain handles.
// Complexity: O(chain count).
func (m *SparseMatrix[T]) Reindex() {
	m.nonEmpty = m.nonEmpty[:0]
	for i, c := range m.chains {
		if !c.IsEmpty() {
			m.nonEmpty = append(m.nonEmpty, i)
			m.state.clear(i)
		}
	}
}

// Clone returns a deep copy: chains, flag word, non-empty index and declared
// extent. No storage is shared with the receiver.
// Complexity: O(total NNZ + chain count).
func (m *SparseMatrix[T]) Clone() *SparseMatrix[T] {
	cp := &SparseMatrix[T]{
		chains:   make([]*chain.Chain[T], len(m.chains)),
		state:    m.state.clone(),
		nonEmpty: append([]int(nil), m.nonEmpty...),
		orient:   m.orient,
		extent:   m.extent,
	}
	for i, c := range m.chains {
		cp.chains[i] = c.Clone()
	}

	return cp
}

// Assign deep-copies other into the receiver. Returns ErrNilMatrix when
// other is nil; the receiver is untouched on error.
func (m *SparseMatrix[T]) Assign(other *SparseMatrix[T]) error {
	if other == nil {
		return ErrNilMatrix
	}
	*m = *other.Clone()

	return nil
}

// Transpose returns a new matrix in which every chain carries the opposite
// orientation and the matrix's overall tag flips. Entries, chain order, the
// flag word and the non-empty index are unchanged.
// Complexity: O(total NNZ + chain count).
func (m *SparseMatrix[T]) Transpose() *SparseMatrix[T] {
	flipped := chain.Row
	if m.orient == chain.Row {
		flipped = chain.Column
	}
	t := &SparseMatrix[T]{
		chains:   make([]*chain.Chain[T], len(m.chains)),
		state:    m.state.clone(),
		nonEmpty: append([]int(nil), m.nonEmpty...),
		orient:   flipped,
		extent:   m.extent,
	}
	for i, c := range m.chains {
		t.chains[i] = c.Transpose()
	}

	return t
}

// Equal reports value equality: same orientation, same chain count, and
// chain-wise equal entries. Bookkeeping (flag word, declared extent) does not
// participate. Nil matrices are equal only to nil.
// Complexity: O(total NNZ).
func Equal[T chain.Coefficient](a, b *SparseMatrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.orient != b.orient || len(a.chains) != len(b.chains) {
		return false
	}
	for i := range a.chains {
		if !chain.Equal(a.chains[i], b.chains[i]) {
			return false
		}
	}

	return true
}

// checkIndex gates chain-position access.
func (m *SparseMatrix[T]) checkIndex(i int) error {
	if i < 0 || i >= len(m.chains) {
		return ErrIndexOutOfRange
	}

	return nil
}

// syncChain repairs the non-empty index for position i after a mutation.
// Incremental: a binary search plus at most one shift.
func (m *SparseMatrix[T]) syncChain(i int) {
	pos := sort.SearchInts(m.nonEmpty, i)
	present := pos < len(m.nonEmpty) && m.nonEmpty[pos] == i
	switch {
	case m.chains[i].IsEmpty() && present:
		m.nonEmpty = append(m.nonEmpty[:pos], m.nonEmpty[pos+1:]...)
	case !m.chains[i].IsEmpty() && !present:
		m.nonEmpty = append(m.nonEmpty, 0)
		copy(m.nonEmpty[pos+1:], m.nonEmpty[pos:])
		m.nonEmpty[pos] = i
	}
}

// freshChain builds an empty chain in the matrix's orientation, carrying the
// given bound when positive. The orientation is known valid here, so the
// constructor cannot fail.
func (m *SparseMatrix[T]) freshChain(bound int) *chain.Chain[T] {
	var opts []chain.Option
	if bound > 0 {
		opts = append(opts, chain.WithBound(bound))
	}
	c, _ := chain.New[T](m.orient, opts...)

	return c
}

// secondaryExtent resolves the matrix's orthogonal dimension.
func (m *SparseMatrix[T]) secondaryExtent() int {
	if m.extent > 0 {
		return m.extent
	}
	widest := 0
	for _, c := range m.chains {
		if b := c.Bound(); b > widest {
			widest = b
		}
		c.ForEach(func(i int, _ T) bool {
			if i+1 > widest {
				widest = i + 1
			}

			return true
		})
	}

	return widest
}

// gather assembles the orthogonal vector at offset i as a fresh chain with
// the requested orientation, probing every non-empty chain. Bounds-checked
// against the secondary extent.
func (m *SparseMatrix[T]) gather(i int, orient chain.Orientation) (*chain.Chain[T], error) {
	if i < 0 || i >= m.secondaryExtent() {
		return nil, ErrIndexOutOfRange
	}
	out, _ := chain.New[T](orient)
	for _, pos := range m.nonEmpty {
		if m.chains[pos].Has(i) {
			out.Set(pos, m.chains[pos].Get(i))
		}
	}

	return out, nil
}

// scatter writes the orthogonal vector c at offset i: chains where c holds an
// entry get it written at offset i, the rest get offset i cleared. Offsets
// are bounds-checked against the declared extent when one exists.
func (m *SparseMatrix[T]) scatter(i int, c *chain.Chain[T]) error {
	if i < 0 || (m.extent > 0 && i >= m.extent) {
		return ErrIndexOutOfRange
	}
	for pos := range m.chains {
		if c.Has(pos) {
			m.chains[pos].Set(i, c.Get(pos))
			m.state.clear(pos)
		} else {
			m.chains[pos].Remove(i)
		}
		m.syncChain(pos)
	}

	return nil
}
