package asgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoute_ExtendSharesTail(t *testing.T) {
	origin := NewRoute(1, true)
	r2 := origin.Extend(2, true)
	r3 := r2.Extend(3, true)

	require.Equal(t, []ASID{1, 2, 3}, r3.Path())
	require.Equal(t, ASID(1), r3.Origin())
	require.Equal(t, ASID(3), r3.Final())
	require.Equal(t, ASID(2), r3.FirstHop())
	require.True(t, r3.Authenticated())
}

func TestRoute_ExtendDetectsCycle(t *testing.T) {
	origin := NewRoute(1, true)
	r2 := origin.Extend(2, true)
	r3 := r2.Extend(1, true)
	require.True(t, r3.ContainsCycle())
}

func TestRoute_ExtendUnauthenticatedPropagates(t *testing.T) {
	origin := NewRoute(1, true)
	r2 := origin.Extend(2, false)
	r3 := r2.Extend(3, true)
	require.False(t, r3.Authenticated())
}

func TestNewForgedRoute(t *testing.T) {
	r := NewForgedRoute([]ASID{9, 8, 1}, true, false)
	require.Equal(t, []ASID{9, 8, 1}, r.Path())
	require.False(t, r.Authenticated())
	require.True(t, r.OriginInvalid())
	require.False(t, r.PathEndInvalid())
}

func TestRoute_FirstHopPanicsOnTrivialRoute(t *testing.T) {
	require.Panics(t, func() {
		NewRoute(1, true).FirstHop()
	})
}

// TestRoute_OriginFlagSeedsAuthenticated guards against treating the
// origin's own BGPsec flag as always-on: a route whose origin itself does
// not run BGPsec can never be Authenticated(), no matter how many
// BGPsec-enabled neighbors relay it onward.
func TestRoute_OriginFlagSeedsAuthenticated(t *testing.T) {
	origin := NewRoute(1, false)
	require.False(t, origin.Authenticated())
	r2 := origin.Extend(2, true)
	r3 := r2.Extend(3, true)
	require.False(t, r3.Authenticated())
}
