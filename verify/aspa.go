package verify

import "github.com/Emeline-1/bgpsecsim/asgraph"

// NodeLookup resolves an AS id to its Node, for reading attestation
// records while walking a route.
type NodeLookup func(id asgraph.ASID) (*asgraph.Node, bool)

// ASPA runs the ASPA path-verification algorithm (IETF draft, Section 6)
// against route, from the point of view of the validating AS route.Final().
// firstHopRelation is the relation route.Final() holds with route.FirstHop().
func ASPA(route *asgraph.Route, firstHopRelation asgraph.Relation, lookup NodeLookup) Outcome {
	path := collapsedPath(route)

	hop := func(xID, yID int) hopResult {
		x, ok := lookup(asgraph.ASID(xID))
		if !ok || x.ASPA == nil {
			return hopNoAttestation
		}
		if x.ASPA.HasProvider(asgraph.ASID(yID)) {
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
		panic("verify: ASPA called with unknown relation " + firstHopRelation.String())
	}
}

// collapsedPath materializes route's path as distinct-AS ints, with
// consecutive prepending duplicates removed, per the draft's "collapse
// prepends in the AS_SEQUENCE" step, and with the validating AS
// (route.Final(), always the last element) dropped -- upstreamOutcome and
// downstreamOutcome only walk hops among the ASes the route passed through
// before reaching the validator. Adapted from the teacher's misc.go
// remove_duplicates helper.
func collapsedPath(route *asgraph.Route) []int {
	full := route.Path()
	ints := make([]int, len(full))
	for i, id := range full {
		ints[i] = int(id)
	}
	collapsed := collapseConsecutiveDuplicates(ints)
	if len(collapsed) == 0 {
		return collapsed
	}
	return collapsed[:len(collapsed)-1]
}
