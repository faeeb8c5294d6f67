package asgraph

import "sort"

// Edge describes one business relation between two ASes as read from an
// input adjacency list: Rel is what B is to A (New records
// A.Neighbors[B] = Rel and B.Neighbors[A] = Rel.Inverse()), so a P2C edge
// with A as the provider carries CUSTOMER, and a symmetric P2P edge carries
// PEER (in which case the A/B naming is arbitrary).
type Edge struct {
	A, B ASID
	Rel  Relation
}

// Graph is the AS-graph: a fixed set of nodes and neighbor edges, built
// once, with per-trial mutable state (policy, routes, attestations)
// overlaid on top. ASes outlive trials; only their per-trial fields are
// reset between trials by the harness.
type Graph struct {
	nodes map[ASID]*Node
}

// New builds a Graph from an adjacency list. Every edge is mirrored with
// the inverse relation. A missing AS id referenced only implicitly (i.e.
// zero edges) is not an error; a provider/customer relation claimed in both
// directions between the same pair is fatal, since it represents a cyclic
// claim the data model cannot express.
func New(edges []Edge) (*Graph, error) {
	g := &Graph{nodes: make(map[ASID]*Node)}

	ensure := func(id ASID) *Node {
		n, ok := g.nodes[id]
		if !ok {
			n = newNode(id)
			g.nodes[id] = n
		}
		return n
	}

	for _, e := range edges {
		if !e.Rel.Valid() {
			return nil, &GraphError{Op: "New", Message: "edge has unknown relation"}
		}
		a := ensure(e.A)
		b := ensure(e.B)

		if existing, ok := a.Neighbors[e.B]; ok && existing != e.Rel {
			return nil, &GraphError{
				Op:      "New",
				Message: "conflicting relation claims between " + e.A.String() + " and " + e.B.String(),
			}
		}
		if existing, ok := b.Neighbors[e.A]; ok && existing != e.Rel.Inverse() {
			return nil, &GraphError{
				Op:      "New",
				Message: "cyclic relation claim between " + e.A.String() + " and " + e.B.String(),
			}
		}

		a.Neighbors[e.B] = e.Rel
		b.Neighbors[e.A] = e.Rel.Inverse()
	}

	for _, n := range g.nodes {
		n.Policy = defaultPolicyPlaceholder
	}
	return g, nil
}

// defaultPolicyPlaceholder is overwritten by policy.NewDefault() via
// SetDefaultPolicyFactory at package-init time from the policy package, so
// asgraph itself never imports policy. Tests that build a Graph directly
// must call ResetPolicies with an explicit policy before using it.
var defaultPolicyPlaceholder Policy

// SetDefaultPolicyFactory lets package policy register the constructor for
// its Default policy, so New and ResetPolicies can install it without
// asgraph importing policy (which would be a cycle, since policy imports
// asgraph for the types it operates on).
func SetDefaultPolicyFactory(factory func() Policy) {
	defaultPolicyFactory = factory
	defaultPolicyPlaceholder = factory()
}

var defaultPolicyFactory func() Policy

// Node returns the node for id, if present.
func (g *Graph) Node(id ASID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NumNodes is the number of ASes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// IDs returns every AS id in the graph, in ascending order.
func (g *Graph) IDs() []ASID {
	ids := make([]ASID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ResetPolicies installs policy on every AS, or the registered Default
// policy factory's output (a fresh value per AS, since some policies carry
// per-instance comparator slices) when policy is nil.
func (g *Graph) ResetPolicies(policy Policy) {
	for _, n := range g.nodes {
		if policy != nil {
			n.Policy = policy
			continue
		}
		if defaultPolicyFactory != nil {
			n.Policy = defaultPolicyFactory()
		}
	}
}

// ClearAttestations removes every ASPA and ASCONES record, corresponding to
// spec's clear_rpki_objects operation.
func (g *Graph) ClearAttestations() {
	for _, n := range g.nodes {
		n.ASPA = nil
		n.ASCONES = nil
		n.ASPAEnabled = false
	}
}

// ClearRoutingTables empties every AS's routing table.
func (g *Graph) ClearRoutingTables() {
	for _, n := range g.nodes {
		n.Routes = make(map[ASID]*Route)
	}
}

// FindRoutesTo populates routes[origin] on every reachable AS with the best
// route it selects under the currently installed policies, via synchronous
// priority propagation (spec's find_routes_to).
func (g *Graph) FindRoutesTo(origin ASID) error {
	node, ok := g.nodes[origin]
	if !ok {
		return &GraphError{Op: "FindRoutesTo", Message: "unknown origin " + origin.String()}
	}
	node.Routes[origin] = NewRoute(origin, node.BGPSecEnabled)
	return g.propagateFrom(origin, []ASID{origin})
}

// PropagateFrom re-runs propagation for origin's table, seeded from the
// given starting AS ids (which must already hold a route for origin in
// their routing table — e.g. after an attack forges one at the attacker).
// Used by package attack after installing a forged route.
func (g *Graph) PropagateFrom(origin ASID, seeds []ASID) error {
	return g.propagateFrom(origin, seeds)
}

func (g *Graph) propagateFrom(origin ASID, seeds []ASID) error {
	queued := make(map[ASID]bool, len(g.nodes))
	queue := make([]ASID, 0, len(seeds))
	for _, s := range seeds {
		if !queued[s] {
			queued[s] = true
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		aID := queue[0]
		queue = queue[1:]
		queued[aID] = false

		a, ok := g.nodes[aID]
		if !ok {
			return &GraphError{Op: "propagateFrom", Message: "unknown AS " + aID.String() + " in work queue"}
		}
		current, ok := a.Routes[origin]
		if !ok {
			continue
		}

		for _, bID := range a.SortedNeighbors() {
			relAB := a.Neighbors[bID]
			// An AS always announces its own origination to every
			// neighbor; forward_to only governs re-advertisement of a
			// route learned from someone else, so it is not consulted
			// for a's trivial length-1 route, nor for a route whose first
			// hop is not one of a's neighbors (an attacker's own
			// fabrication, which it announces like an origination).
			if current.Length() > 1 {
				if _, learned := a.Neighbors[current.FirstHop()]; learned && !a.Policy.ForwardTo(a, current, relAB) {
					continue
				}
			}
			b := g.nodes[bID]
			candidate := current.Extend(bID, b.BGPSecEnabled)
			if !b.Policy.AcceptRoute(b, candidate) {
				continue
			}
			existing, has := b.Routes[origin]
			if has && !b.Policy.PreferRoute(b, existing, candidate) {
				continue
			}
			b.Routes[origin] = candidate
			if !queued[bID] {
				queued[bID] = true
				queue = append(queue, bID)
			}
		}
	}
	return nil
}

// Clone deep-copies the graph's topology and per-AS mutable state, so a
// trial harness worker can mutate its own copy without locking a shared
// graph (spec §5's "if the graph topology is cloned per worker, no
// synchronization is needed").
func (g *Graph) Clone() *Graph {
	out := &Graph{nodes: make(map[ASID]*Node, len(g.nodes))}
	for id, n := range g.nodes {
		cn := &Node{
			ID:            id,
			Neighbors:     make(map[ASID]Relation, len(n.Neighbors)),
			Routes:        make(map[ASID]*Route, len(n.Routes)),
			Policy:        n.Policy,
			BGPSecEnabled: n.BGPSecEnabled,
			ASPAEnabled:   n.ASPAEnabled,
		}
		for k, v := range n.Neighbors {
			cn.Neighbors[k] = v
		}
		for k, v := range n.Routes {
			cn.Routes[k] = v
		}
		if n.ASPA != nil {
			providers := make(map[ASID]struct{}, len(n.ASPA.Providers))
			for k := range n.ASPA.Providers {
				providers[k] = struct{}{}
			}
			cn.ASPA = &ASPARecord{Customer: n.ASPA.Customer, Providers: providers}
		}
		if n.ASCONES != nil {
			customers := make(map[ASID]struct{}, len(n.ASCONES.Customers))
			for k := range n.ASCONES.Customers {
				customers[k] = struct{}{}
			}
			cn.ASCONES = &ASCONESRecord{Provider: n.ASCONES.Provider, Customers: customers}
		}
		out.nodes[id] = cn
	}
	return out
}
