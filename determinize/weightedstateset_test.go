package determinize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfsa/automaton"
)

func TestWeightedStateSetBuilderNormalizes(t *testing.T) {
	b := NewWeightedStateSetBuilder()
	b.Add(1, automaton.FromValue(2))
	b.Add(2, automaton.FromValue(8))

	set, normalizer := b.Get()
	require.Equal(t, 2, set.Len())
	require.InDelta(t, 8.0, normalizer.Value(), 1e-9)

	entries := set.Entries()
	require.Equal(t, uint32(1), entries[0].State)
	require.InDelta(t, 0.25, entries[0].Weight.Value(), 1e-9)
	require.Equal(t, uint32(2), entries[1].State)
	require.InDelta(t, 1.0, entries[1].Weight.Value(), 1e-9)
}

func TestWeightedStateSetBuilderMergesDuplicateState(t *testing.T) {
	b := NewWeightedStateSetBuilder()
	b.Add(1, automaton.FromValue(2))
	b.Add(1, automaton.FromValue(3))

	set, _ := b.Get()
	require.Equal(t, 1, set.Len())
	require.InDelta(t, 1.0, set.Entries()[0].Weight.Value(), 1e-9)
}

func TestWeightedStateSetBuilderAllZero(t *testing.T) {
	b := NewWeightedStateSetBuilder()
	b.Add(1, automaton.Zero())
	b.Add(2, automaton.Zero())

	set, normalizer := b.Get()
	require.Equal(t, 2, set.Len())
	require.True(t, normalizer.Equal(automaton.One()))
	for _, e := range set.Entries() {
		require.True(t, e.Weight.IsZero())
	}
}

func TestWeightedStateSetEqualWithinTolerance(t *testing.T) {
	a := WeightedStateSet{entries: []StateWeight{{State: 1, Weight: automaton.FromLog(0.0)}}}
	b := WeightedStateSet{entries: []StateWeight{{State: 1, Weight: automaton.FromLog(weightTolerance / 2)}}}
	c := WeightedStateSet{entries: []StateWeight{{State: 1, Weight: automaton.FromLog(weightTolerance * 10)}}}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestWeightedStateSetEqualDifferentStates(t *testing.T) {
	a := WeightedStateSet{entries: []StateWeight{{State: 1, Weight: automaton.One()}}}
	b := WeightedStateSet{entries: []StateWeight{{State: 2, Weight: automaton.One()}}}
	require.False(t, a.Equal(b))
}

func TestStateSetIndexLookupInsert(t *testing.T) {
	idx := newStateSetIndex()

	s1 := WeightedStateSet{entries: []StateWeight{{State: 1, Weight: automaton.One()}}}
	_, ok := idx.lookup(s1)
	require.False(t, ok)

	idx.insert(s1, 7)
	got, ok := idx.lookup(s1)
	require.True(t, ok)
	require.Equal(t, uint32(7), got)

	s2 := WeightedStateSet{entries: []StateWeight{{State: 1, Weight: automaton.FromLog(weightTolerance / 2)}}}
	got2, ok := idx.lookup(s2)
	require.True(t, ok)
	require.Equal(t, uint32(7), got2)

	s3 := WeightedStateSet{entries: []StateWeight{{State: 2, Weight: automaton.One()}}}
	_, ok = idx.lookup(s3)
	require.False(t, ok)
}
