package automaton_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfsa/automaton"
)

func TestAutomatonWireRoundTrip(t *testing.T) {
	b := automaton.NewBuilder()
	s1, err := b.AddState()
	require.NoError(t, err)
	b.State(0).AddTransitionTo(automaton.Point('a'), automaton.FromValue(0.5), s1.Index())
	s1.SetEndWeight(automaton.One())

	a, err := b.Finalize()
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	got, err := automaton.ReadAutomatonFrom(&buf)
	require.NoError(t, err)

	require.Equal(t, a.StateCount(), got.StateCount())
	require.Equal(t, a.StartStateIndex(), got.StartStateIndex())
	require.Equal(t, a.IsEpsilonFree(), got.IsEpsilonFree())
	require.Equal(t, a.TransitionCount(), got.TransitionCount())

	wantT := a.TransitionsForState(0)
	gotT := got.TransitionsForState(0)
	require.Len(t, gotT, len(wantT))
	require.Equal(t, wantT[0].DestinationState, gotT[0].DestinationState)
	require.InDelta(t, wantT[0].Weight.LogValue(), gotT[0].Weight.LogValue(), 1e-12)
}

func TestReadAutomatonFromRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	// A full encoding of the empty automaton whose leading version-hash f64
	// is corrupted so it no longer matches wireVersionHash.
	b := automaton.NewBuilder()
	a, err := b.Finalize()
	require.NoError(t, err)
	_, err = a.WriteTo(&buf)
	require.NoError(t, err)

	corrupted := buf.Bytes()
	corrupted[0] ^= 0xFF

	_, err = automaton.ReadAutomatonFrom(bytes.NewReader(corrupted))
	require.ErrorIs(t, err, automaton.ErrWireFormat)
}
