package main

import (
	"fmt"

	"github.com/Emeline-1/bgpsecsim/asgraph"
	"github.com/Emeline-1/bgpsecsim/policy"
	"github.com/Emeline-1/bgpsecsim/trial"
)

// policyFactory resolves a CLI policy name to a trial.PolicyFactory. ASPA
// and ASCONES are the reason this takes the graph as a parameter rather
// than building the asgraph.Policy once up front: their verifier closes
// over g.Node, which must resolve attestations on the worker clone the
// trial is actually running against.
func policyFactory(name string) (trial.PolicyFactory, error) {
	switch name {
	case "default", "":
		return func(*asgraph.Graph) asgraph.Policy { return policy.NewDefault() }, nil
	case "rpki":
		return func(*asgraph.Graph) asgraph.Policy { return policy.NewRPKI() }, nil
	case "pathend":
		return func(*asgraph.Graph) asgraph.Policy { return policy.NewPathEnd() }, nil
	case "bgpsec-low":
		return func(*asgraph.Graph) asgraph.Policy { return policy.NewBGPsecLow() }, nil
	case "bgpsec-med":
		return func(*asgraph.Graph) asgraph.Policy { return policy.NewBGPsecMed() }, nil
	case "bgpsec-high":
		return func(*asgraph.Graph) asgraph.Policy { return policy.NewBGPsecHigh() }, nil
	case "aspa":
		return func(g *asgraph.Graph) asgraph.Policy { return policy.NewASPA(g.Node) }, nil
	case "ascones":
		return func(g *asgraph.Graph) asgraph.Policy { return policy.NewASCONES(g.Node) }, nil
	case "routeleak":
		return func(*asgraph.Graph) asgraph.Policy { return policy.NewRouteLeak() }, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want default, rpki, pathend, bgpsec-low, bgpsec-med, bgpsec-high, aspa, ascones, routeleak)", name)
	}
}
