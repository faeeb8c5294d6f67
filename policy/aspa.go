package policy

import (
	"github.com/Emeline-1/bgpsecsim/asgraph"
	"github.com/Emeline-1/bgpsecsim/verify"
)

// ASPA is the Default policy plus ASPA path verification: a route is
// rejected only when verify.ASPA returns Invalid. Unknown (no attestation
// covers a hop) is accepted, matching the draft's fail-open stance.
type ASPA struct {
	base
	lookup verify.NodeLookup
}

// NewASPA builds the ASPA policy. lookup resolves an AS id to its Node so
// the verifier can read ASPA records for ASes other than self along the
// path; pass (*asgraph.Graph).Node.
func NewASPA(lookup verify.NodeLookup) *ASPA {
	return &ASPA{
		base:   base{name: "ASPA", rules: []Rule{localPreferenceRule, pathLengthRule, firstHopASRule}},
		lookup: lookup,
	}
}

func (p *ASPA) AcceptRoute(self *asgraph.Node, route *asgraph.Route) bool {
	if !p.base.AcceptRoute(self, route) {
		return false
	}
	rel, ok := firstHopRelation(self, route)
	if !ok {
		return true
	}
	return verify.ASPA(route, rel, p.lookup) != verify.Invalid
}
