// Package sparsematrix defines core types, options, and constructors for the
// sparse matrix subpackage of github.com/katalvlaran/osm.
package sparsematrix

import (
	"github.com/katalvlaran/osm/chain"
)

// DefaultChainCount is the preallocated chain count when WithChainCount is
// not supplied.
const DefaultChainCount = 8

// flagWord is a bit-packed per-chain status word, one bit per position.
// Bit i set means chain i was explicitly cleared through ZeroChain and has
// not been repopulated since. This is internal bookkeeping; it never changes
// algebraic results.
type flagWord []uint64

const wordBits = 64

// newFlagWord returns a word sized for n positions.
func newFlagWord(n int) flagWord {
	return make(flagWord, (n+wordBits-1)/wordBits)
}

func (w flagWord) get(i int) bool {
	word := i / wordBits
	if word >= len(w) {
		return false
	}

	return w[word]&(1<<uint(i%wordBits)) != 0
}

func (w *flagWord) set(i int) {
	word := i / wordBits
	for word >= len(*w) {
		*w = append(*w, 0)
	}
	(*w)[word] |= 1 << uint(i%wordBits)
}

func (w flagWord) clear(i int) {
	word := i / wordBits
	if word < len(w) {
		w[word] &^= 1 << uint(i%wordBits)
	}
}

func (w flagWord) clone() flagWord {
	cp := make(flagWord, len(w))
	copy(cp, w)

	return cp
}

// SparseMatrix is an ordered sequence of same-orientation chains. A Row
// matrix stores one chain per row; a Column matrix one chain per column.
//
// Invariant: nonEmpty always equals the ascending set of positions whose
// chain holds at least one entry. Every mutating method maintains it
// incrementally and in the same call; only direct mutation through a live
// chain handle (ChainAt, ForEach) can stale it, in which case the caller
// must Reindex.
type SparseMatrix[T chain.Coefficient] struct {
	chains   []*chain.Chain[T]
	state    flagWord
	nonEmpty []int
	orient   chain.Orientation
	extent   int // declared secondary dimension; 0 = undeclared
}

// Option configures a matrix at construction time.
type Option func(*options)

type options struct {
	chainCount    int
	chainCountSet bool
	bound         int
	boundSet      bool
	zeroed        bool
}

// WithChainCount preallocates n empty chains. n must be >= 0 or New returns
// ErrNegativeChainCount. Without this option New preallocates
// DefaultChainCount chains.
func WithChainCount(n int) Option {
	return func(o *options) {
		o.chainCount = n
		o.chainCountSet = true
	}
}

// WithBound declares the matrix's secondary dimension: every preallocated
// chain is constructed with that bound, and Dims reports it. The bound must
// be positive or New returns ErrNonPositiveBound.
func WithBound(n int) Option {
	return func(o *options) {
		o.bound = n
		o.boundSet = true
	}
}

// WithZeroed marks every preallocated chain as explicitly cleared in the
// per-chain flag word, as if ZeroChain had been called on each position.
func WithZeroed() Option {
	return func(o *options) { o.zeroed = true }
}

// New constructs a matrix of empty chains with the given orientation.
// Complexity: O(chain count).
func New[T chain.Coefficient](orient chain.Orientation, opts ...Option) (*SparseMatrix[T], error) {
	if orient != chain.Row && orient != chain.Column {
		return nil, ErrBadOrientation
	}
	o := options{chainCount: DefaultChainCount}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chainCountSet && o.chainCount < 0 {
		return nil, ErrNegativeChainCount
	}
	if o.boundSet && o.bound <= 0 {
		return nil, ErrNonPositiveBound
	}

	m := &SparseMatrix[T]{
		chains: make([]*chain.Chain[T], o.chainCount),
		state:  newFlagWord(o.chainCount),
		orient: orient,
		extent: o.bound,
	}
	chainOpts := make([]chain.Option, 0, 1)
	if o.boundSet {
		chainOpts = append(chainOpts, chain.WithBound(o.bound))
	}
	for i := range m.chains {
		c, err := chain.New[T](orient, chainOpts...)
		if err != nil {
			return nil, err
		}
		m.chains[i] = c
		if o.zeroed {
			m.state.set(i)
		}
	}

	return m, nil
}
