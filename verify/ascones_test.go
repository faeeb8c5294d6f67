package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

// ascChain builds AS1 (customer) - AS2 (provider of 1) - AS3 (provider of
// 2), with every provider publishing an ASCONES record listing its real
// customer.
func ascChain(t *testing.T) *asgraph.Graph {
	t.Helper()
	g, err := asgraph.New([]asgraph.Edge{
		{A: 1, B: 2, Rel: asgraph.PROVIDER},
		{A: 2, B: 3, Rel: asgraph.PROVIDER},
	})
	require.NoError(t, err)

	n2, _ := g.Node(2)
	n2.ASCONES = &asgraph.ASCONESRecord{Provider: 2, Customers: map[asgraph.ASID]struct{}{1: {}}}
	n3, _ := g.Node(3)
	n3.ASCONES = &asgraph.ASCONESRecord{Provider: 3, Customers: map[asgraph.ASID]struct{}{2: {}}}
	return g
}

func TestASCONES_UpstreamValidPath(t *testing.T) {
	g := ascChain(t)
	route := asgraph.NewRoute(1, true).Extend(2, true).Extend(3, true)

	outcome := ASCONES(route, asgraph.CUSTOMER, g.Node)
	require.Equal(t, Valid, outcome)
}

func TestASCONES_UpstreamInvalidPath(t *testing.T) {
	g := ascChain(t)
	// AS9 is not an authorized customer of AS2.
	route := asgraph.NewForgedRoute([]asgraph.ASID{9, 2, 3}, false, false)

	outcome := ASCONES(route, asgraph.CUSTOMER, g.Node)
	require.Equal(t, Invalid, outcome)
}

func TestASCONES_UnattestedHopIsUnknown(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 1, B: 2, Rel: asgraph.PROVIDER},
		{A: 2, B: 3, Rel: asgraph.PROVIDER},
	})
	require.NoError(t, err)
	route := asgraph.NewRoute(1, true).Extend(2, true).Extend(3, true)

	outcome := ASCONES(route, asgraph.CUSTOMER, g.Node)
	require.Equal(t, Unknown, outcome)
}
