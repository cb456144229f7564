package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfsa/automaton"
)

func TestMergeParallelTransitionsEpsilon(t *testing.T) {
	b := automaton.NewBuilder()
	s1, err := b.AddState()
	require.NoError(t, err)
	s1.SetEndWeight(automaton.One())

	b.State(0).AddEpsilonTransition(automaton.FromValue(0.25), s1.Index())
	b.State(0).AddEpsilonTransition(automaton.FromValue(0.75), s1.Index())

	automaton.MergeParallelTransitions(b)

	a, err := b.Finalize()
	require.NoError(t, err)

	ts := a.TransitionsForState(0)
	require.Len(t, ts, 1)
	require.InDelta(t, 1.0, ts[0].Weight.Value(), 1e-9)
}

func TestMergeParallelTransitionsUnionsDistributions(t *testing.T) {
	b := automaton.NewBuilder()
	s1, err := b.AddState()
	require.NoError(t, err)
	s1.SetEndWeight(automaton.One())

	b.State(0).AddTransitionTo(automaton.Point('a'), automaton.FromValue(0.5), s1.Index())
	b.State(0).AddTransitionTo(automaton.Point('b'), automaton.FromValue(0.5), s1.Index())

	automaton.MergeParallelTransitions(b)

	a, err := b.Finalize()
	require.NoError(t, err)

	ts := a.TransitionsForState(0)
	require.Len(t, ts, 1)
	require.InDelta(t, 1.0, ts[0].Weight.Value(), 1e-9)

	merged := ts[0].ElementDistribution
	require.InDelta(t, 0.5, merged.Probability('a').Value(), 1e-9)
	require.InDelta(t, 0.5, merged.Probability('b').Value(), 1e-9)
	require.True(t, merged.Probability('c').IsZero())
}

func TestMergeParallelTransitionsDistinctGroupsNotMerged(t *testing.T) {
	b := automaton.NewBuilder()
	s1, err := b.AddState()
	require.NoError(t, err)
	s1.SetEndWeight(automaton.One())

	b.State(0).AddTransitionTo(automaton.Point('a'), automaton.One(), s1.Index())
	tr := automaton.Transition{
		ElementDistribution: automaton.Point('a'),
		Weight:              automaton.One(),
		DestinationState:    s1.Index(),
		Group:               1,
	}
	b.State(0).AddTransition(tr)

	automaton.MergeParallelTransitions(b)

	a, err := b.Finalize()
	require.NoError(t, err)
	require.Len(t, a.TransitionsForState(0), 2)
}

func TestPruneStatesWithLogEndWeightLessThanKeepsReachable(t *testing.T) {
	b := automaton.NewBuilder()
	live, err := b.AddState()
	require.NoError(t, err)
	dead, err := b.AddState()
	require.NoError(t, err)

	b.State(0).AddTransitionTo(automaton.Point('a'), automaton.One(), live.Index())
	// dead is only reachable from itself, not from the start state.
	b.State(dead.Index()).AddTransitionTo(automaton.Point('z'), automaton.One(), dead.Index())

	live.SetEndWeight(automaton.One())

	removed, err := automaton.PruneStatesWithLogEndWeightLessThan(b, -1000)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	require.Equal(t, 2, b.StateCount())

	a, err := b.Finalize()
	require.NoError(t, err)
	require.True(t, a.CanEnd(1))
}

func TestPruneStatesWithLogEndWeightLessThanKeepsChainToAccepting(t *testing.T) {
	b := automaton.NewBuilder()
	mid, err := b.AddState()
	require.NoError(t, err)
	end, err := b.AddState()
	require.NoError(t, err)

	b.State(0).AddTransitionTo(automaton.Point('a'), automaton.One(), mid.Index())
	b.State(mid.Index()).AddTransitionTo(automaton.Point('b'), automaton.One(), end.Index())
	end.SetEndWeight(automaton.One())

	removed, err := automaton.PruneStatesWithLogEndWeightLessThan(b, -1000)
	require.NoError(t, err)
	require.Equal(t, 0, removed)
	require.Equal(t, 3, b.StateCount())
}
