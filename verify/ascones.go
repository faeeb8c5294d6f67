package verify

import "github.com/Emeline-1/bgpsecsim/asgraph"

// ASCONES runs the AS Cones path-verification algorithm against route, from
// the point of view of the validating AS route.Final(). It shares the exact
// ramp arithmetic with ASPA (downstreamOutcome/upstreamOutcome); the only
// difference is which side of a hop publishes the attestation: ASPA has the
// customer attest its own providers, ASCONES has the provider attest its
// authorized customers, so hop(x, y) here reads y's record instead of x's.
func ASCONES(route *asgraph.Route, firstHopRelation asgraph.Relation, lookup NodeLookup) Outcome {
	path := collapsedPath(route)

	hop := func(xID, yID int) hopResult {
		y, ok := lookup(asgraph.ASID(yID))
		if !ok || y.ASCONES == nil {
			return hopNoAttestation
		}
		if y.ASCONES.HasCustomer(asgraph.ASID(xID)) {
			return hopProviderPlus
		}
		return hopNotProviderPlus
	}

	switch firstHopRelation {
	case asgraph.CUSTOMER, asgraph.PEER:
		return upstreamOutcome(path, hop)
	case asgraph.PROVIDER:
		return downstreamOutcome(path, hop)
	default:
		panic("verify: ASCONES called with unknown relation " + firstHopRelation.String())
	}
}
