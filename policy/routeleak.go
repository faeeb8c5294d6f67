package policy

import "github.com/Emeline-1/bgpsecsim/asgraph"

// RouteLeak is the Default policy with an unrestricted ForwardTo, modeling
// an AS that re-advertises everything it hears regardless of relation — the
// Gao-Rexford violation the route-leak attack exploits.
type RouteLeak struct{ base }

// NewRouteLeak builds the route-leak policy.
func NewRouteLeak() *RouteLeak {
	return &RouteLeak{base{
		name:  "RouteLeak",
		rules: []Rule{localPreferenceRule, pathLengthRule, firstHopASRule},
	}}
}

func (p *RouteLeak) ForwardTo(self *asgraph.Node, route *asgraph.Route, relation asgraph.Relation) bool {
	return true
}
