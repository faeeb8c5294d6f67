// Package policy implements the pluggable routing-policy contract
// (asgraph.Policy): Default, RPKI, Path-End, BGPsec{Low,Med,High}, ASPA,
// ASCONES and RouteLeak. Each policy is a tagged variant carrying a fixed,
// precomputed list of preference-rule comparators, consulted in order by a
// shared PreferRoute helper — a generalization of the teacher's
// BGP_heuristics.go select_entry, which walks an ordered list of heuristic
// closures and stops at the first one that decides.
package policy

import "github.com/Emeline-1/bgpsecsim/asgraph"

func init() {
	// Registers the Default policy constructor with asgraph the way
	// database/sql drivers register themselves from an underscore
	// import's init(): asgraph.New needs a policy to install on every AS
	// without importing this package (which already imports asgraph).
	asgraph.SetDefaultPolicyFactory(func() asgraph.Policy { return NewDefault() })
}

// Rule is one comparator in a policy's preference order: it scores a route
// from self's point of view, lower is better. A rule that does not apply
// returns ok=false, and the comparison falls through to the next rule
// (mirrors the Python source's "rule returns None" case).
type Rule func(self *asgraph.Node, route *asgraph.Route) (value int, ok bool)

// base holds the pieces shared by every policy: a name for diagnostics and
// the ordered preference rules. Embedding base gives each policy a default
// AcceptRoute/PreferRoute/ForwardTo it can override selectively, the same
// "inherit unless the draft says otherwise" shape as the Python source's
// DefaultPolicy subclasses.
type base struct {
	name  string
	rules []Rule
}

func (b *base) Name() string { return b.name }

// AcceptRoute default: reject any route containing a cycle.
func (b *base) AcceptRoute(self *asgraph.Node, route *asgraph.Route) bool {
	return !route.ContainsCycle()
}

// PreferRoute walks b.rules in order; the first rule that yields a decided
// (non-equal) comparison wins. Ties across every rule keep the current
// route (no replacement).
func (b *base) PreferRoute(self *asgraph.Node, current, new *asgraph.Route) bool {
	for _, rule := range b.rules {
		currentVal, curOK := rule(self, current)
		newVal, newOK := rule(self, new)
		if !curOK || !newOK {
			continue
		}
		if newVal < currentVal {
			return true
		}
		if currentVal < newVal {
			return false
		}
	}
	return false
}

// ForwardTo default (Gao-Rexford egress filter): forward only if the route
// was received from a CUSTOMER, or the egress neighbor is a CUSTOMER. The
// propagation engine never calls this for an AS's own length-1 origin
// route (an AS always announces what it originates) nor for a forged route
// whose first hop is not a neighbor of self, so route always has a first
// hop that self holds a relation with here.
func (b *base) ForwardTo(self *asgraph.Node, route *asgraph.Route, relation asgraph.Relation) bool {
	firstHopRel, ok := firstHopRelation(self, route)
	if !ok {
		panic("policy: ForwardTo called with a route that has no first hop")
	}
	return firstHopRel == asgraph.CUSTOMER || relation == asgraph.CUSTOMER
}

// firstHopRelation looks up, from self's perspective, the relation it holds
// with route.FirstHop().
func firstHopRelation(self *asgraph.Node, route *asgraph.Route) (asgraph.Relation, bool) {
	if route.Length() < 2 {
		return 0, false
	}
	return self.GetRelation(route.FirstHop())
}

// localPreferenceRule scores a route by the relation self holds with its
// first hop. CUSTOMER (1) < PEER (2) < PROVIDER (3) already orders lowest to
// most preferred first, matching PreferRoute's "lower score wins" -- a
// CUSTOMER-learned route beats a PEER-learned route beats a PROVIDER-learned
// one, per Gao-Rexford.
func localPreferenceRule(self *asgraph.Node, route *asgraph.Route) (int, bool) {
	rel, ok := firstHopRelation(self, route)
	if !ok {
		return 0, false
	}
	return int(rel), true
}

func pathLengthRule(self *asgraph.Node, route *asgraph.Route) (int, bool) {
	return route.Length(), true
}

func firstHopASRule(self *asgraph.Node, route *asgraph.Route) (int, bool) {
	if route.Length() < 2 {
		return 0, false
	}
	return int(route.FirstHop()), true
}

// authenticatedRule scores authenticated routes as better (0) than
// unauthenticated ones (1); used by the BGPsec policies at different
// positions in their preference order.
func authenticatedRule(self *asgraph.Node, route *asgraph.Route) (int, bool) {
	if route.Authenticated() {
		return 0, true
	}
	return 1, true
}

// NewDefault builds the Default policy: local preference, then shorter
// AS-path, then smaller first-hop AS id.
func NewDefault() *Default {
	return &Default{base{
		name:  "Default",
		rules: []Rule{localPreferenceRule, pathLengthRule, firstHopASRule},
	}}
}

// Default is the Gao-Rexford baseline policy every AS starts with.
type Default struct{ base }
