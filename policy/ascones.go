package policy

import (
	"github.com/Emeline-1/bgpsecsim/asgraph"
	"github.com/Emeline-1/bgpsecsim/verify"
)

// ASCONES mirrors ASPA with ASCONES verification: reject only Invalid.
type ASCONES struct {
	base
	lookup verify.NodeLookup
}

// NewASCONES builds the ASCONES policy. lookup resolves an AS id to its
// Node so the verifier can read ASCONES records along the path.
func NewASCONES(lookup verify.NodeLookup) *ASCONES {
	return &ASCONES{
		base:   base{name: "ASCONES", rules: []Rule{localPreferenceRule, pathLengthRule, firstHopASRule}},
		lookup: lookup,
	}
}

func (p *ASCONES) AcceptRoute(self *asgraph.Node, route *asgraph.Route) bool {
	if !p.base.AcceptRoute(self, route) {
		return false
	}
	rel, ok := firstHopRelation(self, route)
	if !ok {
		return true
	}
	return verify.ASCONES(route, rel, p.lookup) != verify.Invalid
}
