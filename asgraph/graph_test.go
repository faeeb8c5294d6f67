package asgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testPolicy() Policy { return &acceptAllPolicy{} }

// acceptAllPolicy is a minimal stand-in Policy for exercising propagation
// without importing package policy (which would be a cycle).
type acceptAllPolicy struct{}

func (acceptAllPolicy) Name() string { return "acceptAll" }
func (acceptAllPolicy) AcceptRoute(self *Node, route *Route) bool {
	return !route.ContainsCycle()
}
func (acceptAllPolicy) PreferRoute(self *Node, current, new *Route) bool {
	return new.Length() < current.Length()
}
func (acceptAllPolicy) ForwardTo(self *Node, route *Route, relation Relation) bool {
	return true
}

func smallChain(t *testing.T) *Graph {
	t.Helper()
	g, err := New([]Edge{
		{A: 1, B: 2, Rel: PROVIDER},
		{A: 2, B: 3, Rel: PROVIDER},
	})
	require.NoError(t, err)
	g.ResetPolicies(testPolicy())
	return g
}

func TestNew_MirrorsInverseRelation(t *testing.T) {
	g := smallChain(t)
	n1, _ := g.Node(1)
	rel, ok := n1.GetRelation(2)
	require.True(t, ok)
	require.Equal(t, PROVIDER, rel)

	n2, _ := g.Node(2)
	rel, ok = n2.GetRelation(1)
	require.True(t, ok)
	require.Equal(t, CUSTOMER, rel)
}

func TestNew_ConflictingRelationIsError(t *testing.T) {
	_, err := New([]Edge{
		{A: 1, B: 2, Rel: PROVIDER},
		{A: 1, B: 2, Rel: PEER},
	})
	require.Error(t, err)
}

func TestNew_CyclicRelationClaimIsError(t *testing.T) {
	_, err := New([]Edge{
		{A: 1, B: 2, Rel: PROVIDER},
		{A: 2, B: 1, Rel: PROVIDER},
	})
	require.Error(t, err)
}

func TestNew_UnknownRelationIsError(t *testing.T) {
	_, err := New([]Edge{{A: 1, B: 2, Rel: Relation(9)}})
	require.Error(t, err)
}

func TestFindRoutesTo_PropagatesAlongChain(t *testing.T) {
	g := smallChain(t)
	require.NoError(t, g.FindRoutesTo(1))

	n2, _ := g.Node(2)
	route, ok := n2.Routes[1]
	require.True(t, ok)
	require.Equal(t, []ASID{1, 2}, route.Path())

	n3, _ := g.Node(3)
	route, ok = n3.Routes[1]
	require.True(t, ok)
	require.Equal(t, []ASID{1, 2, 3}, route.Path())
}

// TestFindRoutesTo_UnauthenticatedOriginNeverAuthenticates guards against
// seeding the trivial route as always-authenticated: an origin that does
// not itself run BGPsec must report Authenticated()==false everywhere,
// even at AS3, whose only neighbor on the path (AS2) does run BGPsec.
func TestFindRoutesTo_UnauthenticatedOriginNeverAuthenticates(t *testing.T) {
	g := smallChain(t)
	n1, _ := g.Node(1)
	n1.BGPSecEnabled = false
	n2, _ := g.Node(2)
	n2.BGPSecEnabled = true
	n3, _ := g.Node(3)
	n3.BGPSecEnabled = true

	require.NoError(t, g.FindRoutesTo(1))

	route, ok := n3.Routes[1]
	require.True(t, ok)
	require.False(t, route.Authenticated())
}

func TestPropagateFrom_SeedsForgedRoute(t *testing.T) {
	g := smallChain(t)
	n3, _ := g.Node(3)
	n3.Routes[1] = NewForgedRoute([]ASID{9, 3}, true, false)

	require.NoError(t, g.PropagateFrom(1, []ASID{3}))

	n2, _ := g.Node(2)
	route, ok := n2.Routes[1]
	require.True(t, ok)
	require.Equal(t, []ASID{9, 3, 2}, route.Path())
	require.True(t, route.OriginInvalid())
}

func TestClone_IsIndependent(t *testing.T) {
	g := smallChain(t)
	require.NoError(t, g.FindRoutesTo(1))

	clone := g.Clone()
	n2clone, _ := clone.Node(2)
	n2clone.Routes = map[ASID]*Route{}

	n2orig, _ := g.Node(2)
	require.NotEmpty(t, n2orig.Routes)
}

func TestClearAttestations(t *testing.T) {
	g := smallChain(t)
	n1, _ := g.Node(1)
	n1.ASPA = &ASPARecord{Customer: 1, Providers: map[ASID]struct{}{2: {}}}
	n1.ASPAEnabled = true

	g.ClearAttestations()
	require.Nil(t, n1.ASPA)
	require.False(t, n1.ASPAEnabled)
}
