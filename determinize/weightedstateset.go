// File: weightedstateset.go
// Role: WeightedStateSet, the deduplicated key identifying one state of a
// determinized automaton, and WeightedStateSetBuilder, which accumulates
// contributions and normalizes them.
//
// Equality and hashing follow a hybrid exact/tolerance scheme: state
// indices compare exactly, log-weights compare within weightTolerance.
// The hash folds in only the high 32 bits of each weight's IEEE-754 log
// value, so sets differing by a near-equal weight collide into the same
// bucket (where Equal then confirms or rejects them) while grossly
// unequal weights do not.
package determinize

import (
	"math"
	"sort"

	"github.com/katalvlaran/wfsa/automaton"
)

// weightTolerance is the log-value tolerance for WeightedStateSet weight
// equality (spec-mandated constant, distinct from the determinizer's
// configurable LogEps pruning threshold).
const weightTolerance = 1e-6

// StateWeight is one member of a WeightedStateSet.
type StateWeight struct {
	State  uint32
	Weight automaton.Weight
}

// WeightedStateSet is an ordered, deduplicated list of (state, weight)
// pairs, ascending by State, identifying one state of a determinized
// automaton.
type WeightedStateSet struct {
	entries []StateWeight
}

// Entries returns a copy of the set's members in ascending state order.
func (s WeightedStateSet) Entries() []StateWeight {
	return append([]StateWeight(nil), s.entries...)
}

// Len returns the number of members.
func (s WeightedStateSet) Len() int { return len(s.entries) }

// Equal reports whether s and other have identical state-index sequences
// and pairwise log-weights within weightTolerance.
func (s WeightedStateSet) Equal(other WeightedStateSet) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i, e := range s.entries {
		o := other.entries[i]
		if e.State != o.State {
			return false
		}
		if math.Abs(e.Weight.LogValue()-o.Weight.LogValue()) > weightTolerance {
			return false
		}
	}

	return true
}

// hash computes a bucketing hash consistent with the tolerance in Equal:
// two sets with Equal == true always hash identically, since folding in
// only the high 32 bits of a log-weight is insensitive to sub-tolerance
// differences in the common case, though a hash collision is always
// possible and must be resolved by Equal, never trusted alone.
func (s WeightedStateSet) hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, e := range s.entries {
		h ^= uint64(e.State)
		h *= 1099511628211
		bits := math.Float64bits(e.Weight.LogValue())
		h ^= uint64(uint32(bits >> 32))
		h *= 1099511628211
	}

	return h
}

// WeightedStateSetBuilder accumulates (state, weight) contributions,
// merging duplicate states by automaton.Sum, and produces a normalized
// WeightedStateSet on Get.
type WeightedStateSetBuilder struct {
	byState map[uint32]automaton.Weight
}

// NewWeightedStateSetBuilder returns an empty builder.
func NewWeightedStateSetBuilder() *WeightedStateSetBuilder {
	return &WeightedStateSetBuilder{byState: make(map[uint32]automaton.Weight)}
}

// Add contributes weight to state, summing with any prior contribution to
// the same state.
func (b *WeightedStateSetBuilder) Add(state uint32, weight automaton.Weight) {
	if existing, ok := b.byState[state]; ok {
		b.byState[state] = automaton.Sum(existing, weight)
	} else {
		b.byState[state] = weight
	}
}

// Get returns the accumulated members as a WeightedStateSet normalized so
// the maximum member weight is automaton.One, together with the
// normalizer (the pre-normalization maximum weight, folded by callers
// into the outgoing transition weight). If every accumulated weight is
// Zero, normalization is skipped and the normalizer is One.
func (b *WeightedStateSetBuilder) Get() (WeightedStateSet, automaton.Weight) {
	states := make([]uint32, 0, len(b.byState))
	for s := range b.byState {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	max := automaton.Zero()
	for _, s := range states {
		if b.byState[s].Greater(max) {
			max = b.byState[s]
		}
	}

	entries := make([]StateWeight, 0, len(states))
	if max.IsZero() {
		for _, s := range states {
			entries = append(entries, StateWeight{State: s, Weight: automaton.Zero()})
		}

		return WeightedStateSet{entries: entries}, automaton.One()
	}

	inv, _ := max.Inverse()
	for _, s := range states {
		entries = append(entries, StateWeight{State: s, Weight: automaton.Product(b.byState[s], inv)})
	}

	return WeightedStateSet{entries: entries}, max
}

// stateSetIndex finds-or-assigns the output state for a WeightedStateSet
// using the hybrid hash/tolerance scheme above.
type stateSetIndex struct {
	buckets map[uint64][]indexedSet
}

type indexedSet struct {
	set   WeightedStateSet
	state uint32
}

func newStateSetIndex() *stateSetIndex {
	return &stateSetIndex{buckets: make(map[uint64][]indexedSet)}
}

func (idx *stateSetIndex) lookup(s WeightedStateSet) (uint32, bool) {
	for _, e := range idx.buckets[s.hash()] {
		if e.set.Equal(s) {
			return e.state, true
		}
	}

	return 0, false
}

func (idx *stateSetIndex) insert(s WeightedStateSet, state uint32) {
	h := s.hash()
	idx.buckets[h] = append(idx.buckets[h], indexedSet{set: s, state: state})
}
