// Package score computes the two success-rate metrics over a propagated
// asgraph.Graph: attacker success rate for path hijacks, and route-leak
// success rate for Gao-Rexford violations. Both return exact rationals
// (math/big.Rat) rather than floats, so repeated trials can be aggregated
// without accumulating rounding error.
package score

import (
	"math/big"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

// AttackerSuccessRate reports, as a percentage in [0, 100], the fraction of
// ASes holding any route to victim whose stored path was hijacked by
// attacker: attacker appears on the path immediately after victim (i.e. at
// index >= 1 with path[index-1] == victim). This excludes legitimate
// transit that happens to pass through attacker further down the path.
func AttackerSuccessRate(g *asgraph.Graph, victim, attacker asgraph.ASID) *big.Rat {
	total, bad := 0, 0
	for _, id := range g.IDs() {
		node, _ := g.Node(id)
		route, ok := node.Routes[victim]
		if !ok {
			continue
		}
		total++
		if hijackedBy(route, victim, attacker) {
			bad++
		}
	}
	return percentage(bad, total)
}

func hijackedBy(route *asgraph.Route, victim, attacker asgraph.ASID) bool {
	path := route.Path()
	for i := 1; i < len(path); i++ {
		if path[i] == attacker && path[i-1] == victim {
			return true
		}
	}
	return false
}

// RouteLeakSuccessRate reports, as a percentage in [0, 100], the fraction
// of stored routes to victim that contain a Gao-Rexford violation: some
// intermediate AS X received the route from a PEER or PROVIDER and
// forwarded it to a PEER or PROVIDER. The violating AS (the "offending" AS)
// must equal attacker; any other offending AS is an invariant violation —
// either a bug in propagation, or a policy installed outside the leak
// scenario — and is reported rather than silently tolerated.
func RouteLeakSuccessRate(g *asgraph.Graph, victim, attacker asgraph.ASID) (*big.Rat, error) {
	total, bad := 0, 0
	for _, id := range g.IDs() {
		node, _ := g.Node(id)
		route, ok := node.Routes[victim]
		if !ok {
			continue
		}
		total++

		offender, leaked, err := leakingAS(g, route)
		if err != nil {
			return nil, err
		}
		if !leaked {
			continue
		}
		if offender != attacker {
			return nil, &asgraph.InvariantError{
				Op:      "RouteLeakSuccessRate",
				Message: "offending AS " + offender.String() + " does not match designated attacker " + attacker.String(),
			}
		}
		bad++
	}
	return percentage(bad, total), nil
}

// leakingAS walks route's path looking for the first intermediate AS that
// received from a PEER/PROVIDER and forwarded to a PEER/PROVIDER.
func leakingAS(g *asgraph.Graph, route *asgraph.Route) (offender asgraph.ASID, leaked bool, err error) {
	path := route.Path()
	for i := 1; i < len(path)-1; i++ {
		x, ok := g.Node(path[i])
		if !ok {
			return 0, false, &asgraph.GraphError{Op: "leakingAS", Message: "unknown AS " + path[i].String() + " on stored route"}
		}
		receivedFrom, ok := x.GetRelation(path[i-1])
		if !ok {
			return 0, false, &asgraph.GraphError{Op: "leakingAS", Message: "no relation between " + path[i].String() + " and " + path[i-1].String()}
		}
		forwardedTo, ok := x.GetRelation(path[i+1])
		if !ok {
			return 0, false, &asgraph.GraphError{Op: "leakingAS", Message: "no relation between " + path[i].String() + " and " + path[i+1].String()}
		}
		if receivedFrom != asgraph.CUSTOMER && forwardedTo != asgraph.CUSTOMER {
			return path[i], true, nil
		}
	}
	return 0, false, nil
}

func percentage(count, total int) *big.Rat {
	if total == 0 {
		return big.NewRat(0, 1)
	}
	return new(big.Rat).Mul(big.NewRat(int64(count), int64(total)), big.NewRat(100, 1))
}
