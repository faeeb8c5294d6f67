package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

func TestASPAPolicy_RejectsInvalid(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 1, B: 2, Rel: asgraph.PROVIDER},
		{A: 2, B: 3, Rel: asgraph.PROVIDER},
	})
	require.NoError(t, err)
	n1, _ := g.Node(1)
	n1.ASPA = &asgraph.ASPARecord{Customer: 1, Providers: map[asgraph.ASID]struct{}{2: {}}}

	p := NewASPA(g.Node)
	n3, _ := g.Node(3)

	valid := asgraph.NewRoute(1, true).Extend(2, true).Extend(3, true)
	require.True(t, p.AcceptRoute(n3, valid))

	forged := asgraph.NewForgedRoute([]asgraph.ASID{1, 9, 2, 3}, false, false)
	require.False(t, p.AcceptRoute(n3, forged))
}

func TestASCONESPolicy_AcceptsUnknown(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 1, B: 2, Rel: asgraph.PROVIDER},
		{A: 2, B: 3, Rel: asgraph.PROVIDER},
	})
	require.NoError(t, err)
	// No ASCONES records published: every hop is Unknown, which is accepted.
	p := NewASCONES(g.Node)
	n3, _ := g.Node(3)

	route := asgraph.NewRoute(1, true).Extend(2, true).Extend(3, true)
	require.True(t, p.AcceptRoute(n3, route))
}
