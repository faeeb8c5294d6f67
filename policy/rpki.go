package policy

import "github.com/Emeline-1/bgpsecsim/asgraph"

// RPKI is the Default policy plus origin-validation rejection.
type RPKI struct{ base }

// NewRPKI builds the RPKI policy.
func NewRPKI() *RPKI {
	return &RPKI{base{
		name:  "RPKI",
		rules: []Rule{localPreferenceRule, pathLengthRule, firstHopASRule},
	}}
}

func (p *RPKI) AcceptRoute(self *asgraph.Node, route *asgraph.Route) bool {
	return p.base.AcceptRoute(self, route) && !route.OriginInvalid()
}
