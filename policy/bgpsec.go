package policy

import "github.com/Emeline-1/bgpsecsim/asgraph"

// BGPsec carries the three BGPsec deployment levels. All three accept when
// origin is valid — the shipped Python behavior, which spec.md §9 pins as
// the behavior to preserve rather than the stricter "reject unauthenticated
// when every AS on the path has bgp_sec_enabled" rule the source's comments
// say it "should actually" implement. They differ only in where the
// authenticated-route preference is inserted relative to local preference
// and path length.
type BGPsec struct{ base }

func (p *BGPsec) AcceptRoute(self *asgraph.Node, route *asgraph.Route) bool {
	return p.base.AcceptRoute(self, route) && !route.OriginInvalid()
}

// NewBGPsecHigh prefers authenticated routes before local preference.
func NewBGPsecHigh() *BGPsec {
	return &BGPsec{base{
		name:  "BGPsecHigh",
		rules: []Rule{authenticatedRule, localPreferenceRule, pathLengthRule, firstHopASRule},
	}}
}

// NewBGPsecMed prefers authenticated routes after local preference, before
// path length.
func NewBGPsecMed() *BGPsec {
	return &BGPsec{base{
		name:  "BGPsecMed",
		rules: []Rule{localPreferenceRule, authenticatedRule, pathLengthRule, firstHopASRule},
	}}
}

// NewBGPsecLow prefers authenticated routes after path length, before the
// AS-id tie-break.
func NewBGPsecLow() *BGPsec {
	return &BGPsec{base{
		name:  "BGPsecLow",
		rules: []Rule{localPreferenceRule, pathLengthRule, authenticatedRule, firstHopASRule},
	}}
}
