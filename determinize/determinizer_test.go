package determinize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfsa/automaton"
	"github.com/katalvlaran/wfsa/determinize"
)

func matchCountAt(a *automaton.ImmutableAutomaton, state uint32, element int) int {
	count := 0
	for _, t := range a.TransitionsForState(state) {
		if !t.ElementDistribution.Probability(element).IsZero() {
			count++
		}
	}

	return count
}

func TestTryDeterminizeAlreadyDeterministic(t *testing.T) {
	b := automaton.NewBuilder()
	s1, err := b.AddState()
	require.NoError(t, err)
	b.State(0).AddTransitionTo(automaton.Point('a'), automaton.One(), s1.Index())
	s1.SetEndWeight(automaton.One())

	a, err := b.Finalize()
	require.NoError(t, err)
	require.LessOrEqual(t, a.StateCount(), 3)

	d := determinize.NewDeterminizer(determinize.NewDiscreteCharHook())
	ok := d.TryDeterminize(a)
	require.True(t, ok)
	require.Equal(t, automaton.DeterminizationIsDeterminized, a.DeterminizationState())
	require.Equal(t, 1, matchCountAt(a, a.StartStateIndex(), 'a'))
}

func TestTryDeterminizeOverlappingRanges(t *testing.T) {
	b := automaton.NewBuilder()
	s1, err := b.AddState()
	require.NoError(t, err)
	s2, err := b.AddState()
	require.NoError(t, err)

	b.State(0).AddTransitionTo(automaton.InRange(0, 10), automaton.One(), s1.Index())
	b.State(0).AddTransitionTo(automaton.InRange(5, 15), automaton.One(), s2.Index())
	s1.SetEndWeight(automaton.One())
	s2.SetEndWeight(automaton.One())

	a, err := b.Finalize()
	require.NoError(t, err)

	d := determinize.NewDeterminizer(determinize.NewDiscreteCharHook())
	ok := d.TryDeterminize(a)
	require.True(t, ok)
	require.Equal(t, automaton.DeterminizationIsDeterminized, a.DeterminizationState())
	require.True(t, a.IsEpsilonFree())

	for _, elem := range []int{2, 7, 12} {
		require.LessOrEqualf(t, matchCountAt(a, a.StartStateIndex(), elem), 1,
			"element %d matched more than one outgoing transition", elem)
	}

	// Every element in the overlap region must still match something.
	require.GreaterOrEqual(t, matchCountAt(a, a.StartStateIndex(), 7), 1)
}

func TestTryDeterminizeRefusesGroups(t *testing.T) {
	b := automaton.NewBuilder()
	s1, err := b.AddState()
	require.NoError(t, err)
	b.State(0).AddTransition(automaton.Transition{
		ElementDistribution: automaton.Point('a'),
		Weight:              automaton.One(),
		DestinationState:    s1.Index(),
		Group:               1,
	})
	s1.SetEndWeight(automaton.One())

	a, err := b.Finalize()
	require.NoError(t, err)

	d := determinize.NewDeterminizer(determinize.NewDiscreteCharHook())
	ok := d.TryDeterminize(a)
	require.False(t, ok)
	require.Equal(t, automaton.DeterminizationIsNonDeterminizable, a.DeterminizationState())
}

func TestTryDeterminizeStateBudget(t *testing.T) {
	b := automaton.NewBuilder()
	s1, err := b.AddState()
	require.NoError(t, err)
	s2, err := b.AddState()
	require.NoError(t, err)
	b.State(0).AddTransitionTo(automaton.InRange(0, 10), automaton.One(), s1.Index())
	b.State(0).AddTransitionTo(automaton.InRange(5, 15), automaton.One(), s2.Index())
	s1.SetEndWeight(automaton.One())
	s2.SetEndWeight(automaton.One())

	a, err := b.Finalize()
	require.NoError(t, err)

	d := determinize.NewDeterminizer(determinize.NewDiscreteCharHook(), determinize.WithMaxStates(1))
	ok := d.TryDeterminize(a)
	require.False(t, ok)
}

func TestDeterminizerLogEpsOption(t *testing.T) {
	d := determinize.NewDeterminizer(determinize.NewDiscreteCharHook())
	require.Equal(t, determinize.DefaultLogEps, d.LogEps())

	d2 := determinize.NewDeterminizer(determinize.NewDiscreteCharHook(), determinize.WithLogEps(-10))
	require.Equal(t, -10.0, d2.LogEps())
}
