package asgraph

import "sort"

// Policy is the routing-policy contract every AS's decision process
// implements. Defined here, rather than in package policy, so Node can hold
// one without an import cycle; package policy supplies the implementations.
//
// self is always the AS the policy is currently deciding for (route.Final()
// for AcceptRoute/PreferRoute, the forwarding AS for ForwardTo), passed
// explicitly because Route is a plain value type with no back-reference
// into the graph.
type Policy interface {
	Name() string

	// AcceptRoute is the ingress filter: should self install route at all,
	// independent of what it currently has.
	AcceptRoute(self *Node, route *Route) bool

	// PreferRoute reports whether new is strictly better than current for
	// self. Both routes are assumed to share the same Final AS (self.ID).
	PreferRoute(self *Node, current, new *Route) bool

	// ForwardTo is the Gao-Rexford egress filter: should self re-advertise
	// route to a neighbor held with relation.
	ForwardTo(self *Node, route *Route, relation Relation) bool
}

// ASPARecord is an ASPA attestation: customer publishes the set of ASNs it
// accepts as providers.
type ASPARecord struct {
	Customer  ASID
	Providers map[ASID]struct{}
}

// HasProvider reports whether asn is in the attested provider set.
func (a *ASPARecord) HasProvider(asn ASID) bool {
	if a == nil {
		return false
	}
	_, ok := a.Providers[asn]
	return ok
}

// ASCONESRecord is an ASCONES attestation: provider publishes the set of
// ASNs it authorizes as customers.
type ASCONESRecord struct {
	Provider  ASID
	Customers map[ASID]struct{}
}

// HasCustomer reports whether asn is in the attested customer set.
func (a *ASCONESRecord) HasCustomer(asn ASID) bool {
	if a == nil {
		return false
	}
	_, ok := a.Customers[asn]
	return ok
}

// Node is the per-AS mutable state: neighbor table, one route per origin,
// active policy, feature flags, and optional attestation records.
type Node struct {
	ID ASID

	// Neighbors maps neighbor AS id to the relation this AS holds with it.
	Neighbors map[ASID]Relation

	// Routes maps origin AS id to the best route currently selected for
	// that origin's announcement.
	Routes map[ASID]*Route

	Policy Policy

	BGPSecEnabled bool
	ASPAEnabled   bool

	ASPA    *ASPARecord
	ASCONES *ASCONESRecord
}

func newNode(id ASID) *Node {
	return &Node{
		ID:        id,
		Neighbors: make(map[ASID]Relation),
		Routes:    make(map[ASID]*Route),
	}
}

// GetRelation returns the relation this AS holds with neighbor, and whether
// that neighbor edge exists at all.
func (n *Node) GetRelation(neighbor ASID) (Relation, bool) {
	rel, ok := n.Neighbors[neighbor]
	return rel, ok
}

// SortedNeighbors returns this AS's neighbor ids in ascending order, the
// iteration order the propagation engine must use to stay deterministic.
func (n *Node) SortedNeighbors() []ASID {
	ids := make([]ASID, 0, len(n.Neighbors))
	for id := range n.Neighbors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
