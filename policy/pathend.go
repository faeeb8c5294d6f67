package policy

import "github.com/Emeline-1/bgpsecsim/asgraph"

// PathEnd is the Default policy plus path-end validation rejection: the AS
// adjacent to the origin must be an authorized neighbor.
type PathEnd struct{ base }

// NewPathEnd builds the Path-End validation policy.
func NewPathEnd() *PathEnd {
	return &PathEnd{base{
		name:  "PathEnd",
		rules: []Rule{localPreferenceRule, pathLengthRule, firstHopASRule},
	}}
}

func (p *PathEnd) AcceptRoute(self *asgraph.Node, route *asgraph.Route) bool {
	return p.base.AcceptRoute(self, route) && !route.PathEndInvalid()
}
