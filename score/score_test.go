package score

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

func installRoute(g *asgraph.Graph, at, origin asgraph.ASID, path []asgraph.ASID) {
	node, _ := g.Node(at)
	node.Routes[origin] = asgraph.NewForgedRoute(path, false, false)
}

func TestAttackerSuccessRate_CountsDirectHijackOnly(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 6, B: 3, Rel: asgraph.PROVIDER},
		{A: 3, B: 9, Rel: asgraph.PEER},
		{A: 9, B: 12, Rel: asgraph.PROVIDER},
	})
	require.NoError(t, err)

	// AS9's route legitimately transits through AS3 -- 9 itself never
	// appears right after the victim, so this is ordinary transit, not a
	// hijack of 9's own table.
	installRoute(g, 9, 6, []asgraph.ASID{6, 3, 9})
	// AS12 adopted a route where the attacker (9) announced right after
	// the victim (6): a direct hijack.
	installRoute(g, 12, 6, []asgraph.ASID{6, 9, 12})

	rate := AttackerSuccessRate(g, 6, 9)
	require.Equal(t, big.NewRat(50, 1), rate)
}

func TestAttackerSuccessRate_NoRoutesIsZero(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{{A: 1, B: 2, Rel: asgraph.PROVIDER}})
	require.NoError(t, err)
	rate := AttackerSuccessRate(g, 1, 2)
	require.Equal(t, big.NewRat(0, 1), rate)
}

func TestRouteLeakSuccessRate_DetectsPeerToPeerLeak(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 2, B: 1, Rel: asgraph.PEER},
		{A: 2, B: 3, Rel: asgraph.PEER},
	})
	require.NoError(t, err)

	// AS2 received victim(1)'s route over a peer link and leaks it to
	// another peer, 3: a peer-to-peer violation.
	installRoute(g, 3, 1, []asgraph.ASID{1, 2, 3})

	rate, err := RouteLeakSuccessRate(g, 1, 2)
	require.NoError(t, err)
	require.Equal(t, big.NewRat(100, 1), rate)
}

func TestRouteLeakSuccessRate_MismatchedOffenderIsInvariantError(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 2, B: 1, Rel: asgraph.PEER},
		{A: 2, B: 3, Rel: asgraph.PEER},
	})
	require.NoError(t, err)
	installRoute(g, 3, 1, []asgraph.ASID{1, 2, 3})

	_, err = RouteLeakSuccessRate(g, 1, 999)
	require.Error(t, err)
	var invErr *asgraph.InvariantError
	require.ErrorAs(t, err, &invErr)
}

func TestRouteLeakSuccessRate_CustomerForwardedIsClean(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 2, B: 1, Rel: asgraph.PEER},
		{A: 2, B: 3, Rel: asgraph.CUSTOMER},
	})
	require.NoError(t, err)
	// AS2 received the route over a peer link but forwards it to its
	// customer 3: no violation (forwarding to a customer is always
	// legitimate).
	installRoute(g, 3, 1, []asgraph.ASID{1, 2, 3})

	rate, err := RouteLeakSuccessRate(g, 1, 2)
	require.NoError(t, err)
	require.Equal(t, big.NewRat(0, 1), rate)
}
