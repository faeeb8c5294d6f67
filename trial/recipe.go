package trial

import (
	"math/rand"

	"github.com/Emeline-1/bgpsecsim/asgraph"
	"github.com/Emeline-1/bgpsecsim/policy"
	"github.com/Emeline-1/bgpsecsim/topology"
)

// AttackerRole selects which of the three attack families (spec.md §6's
// HIJACK_N_HOPS(n) / FORGED_ORIGIN / ROUTE_LEAK) a trial exercises.
type AttackerRole int

const (
	// RoleHijackNHops runs attack.HijackNHops(victim, attacker, HijackHops)
	// leaving the attacker's deployed policy as-is.
	RoleHijackNHops AttackerRole = iota
	// RoleForgedOrigin forces the attacker's policy to Default (so it does
	// not reject its own fabrication) and hijacks with n = 1.
	RoleForgedOrigin
	// RoleRouteLeak forces the attacker's policy to RouteLeak and injects
	// no forged route; it scores via RouteLeakSuccessRate instead of
	// AttackerSuccessRate.
	RoleRouteLeak
)

// Recipe is one experiment configuration a Harness applies identically to
// every trial it runs, per spec.md §6's "Policy and attestation
// configuration": a base policy, a deployment list of upgraded ASes, and
// the attestation publishers feeding ASPA/ASCONES verification.
// PolicyFactory builds a policy bound to g -- the worker's own graph clone,
// never the pristine graph passed to NewHarness. ASPA and ASCONES need this:
// their verifier closes over a asgraph.Node lookup, and that lookup must
// resolve attestations on the same clone the trial is about to run against,
// not the original graph every worker forked from.
type PolicyFactory func(g *asgraph.Graph) asgraph.Policy

type Recipe struct {
	// BasePolicy is applied to every AS before the deployment overlay. Nil
	// means the registered Default policy.
	BasePolicy PolicyFactory

	// Deployment overrides BasePolicy for the listed ASes, modeling a fixed
	// partial rollout of a security mechanism. Populate with
	// topology.SelectDeployment's output paired with the upgraded policy's
	// constructor. Ignored when DeploymentPolicy is set.
	Deployment map[asgraph.ASID]PolicyFactory

	// DeploymentPolicy, DeploymentStrategy, DeploymentFraction, and
	// DeploymentSeed configure a deployment set redrawn fresh for every
	// trial instead of a fixed Deployment map -- spec.md §4.8 step 2's
	// "sampled uniformly at random per trial" mode, needed because
	// topology.UniformRandom drawn once and reused for every trial would
	// violate spec.md §5's statistical independence across trials. Leave
	// DeploymentPolicy nil to use the fixed Deployment map instead, which
	// is the only sensible mode for the cone-ranked strategies (they are
	// deterministic, so resampling them would just recompute the same set).
	DeploymentPolicy   PolicyFactory
	DeploymentStrategy topology.Strategy
	DeploymentFraction float64
	DeploymentSeed     int64

	// ASPAPublishers and ASCONESPublishers install attestation records on
	// the listed ASes before propagation.
	ASPAPublishers    map[asgraph.ASID]*asgraph.ASPARecord
	ASCONESPublishers map[asgraph.ASID]*asgraph.ASCONESRecord

	// Role selects the attack family; HijackHops is consulted only for
	// RoleHijackNHops.
	Role       AttackerRole
	HijackHops int

	// RouteLeakPolicy and ForgedOriginPolicy override the constructors used
	// for the attacker's forced policy under RoleRouteLeak /
	// RoleForgedOrigin. Nil uses policy.NewRouteLeak / policy.NewDefault.
	RouteLeakPolicy    PolicyFactory
	ForgedOriginPolicy PolicyFactory
}

// apply installs the base policy, deployment overlay, and attestation
// publishers onto g -- spec.md §4.8 steps 1-2 ("resets all AS policies to
// Default and clears ASPA/ASCONES records", "applies the experiment
// recipe"). rng is consulted only when DeploymentPolicy is set, to redraw
// the deployment set; callers not using resampled deployment may pass nil.
func (r Recipe) apply(g *asgraph.Graph, rng *rand.Rand) {
	if r.BasePolicy != nil {
		g.ResetPolicies(r.BasePolicy(g))
	} else {
		g.ResetPolicies(nil)
	}
	g.ClearAttestations()

	if r.DeploymentPolicy != nil {
		for _, id := range topology.SelectDeployment(g, r.DeploymentFraction, r.DeploymentStrategy, rng) {
			node, ok := g.Node(id)
			if !ok {
				continue
			}
			node.Policy = r.DeploymentPolicy(g)
		}
	} else {
		for id, factory := range r.Deployment {
			node, ok := g.Node(id)
			if !ok {
				continue
			}
			node.Policy = factory(g)
		}
	}
	for id, record := range r.ASPAPublishers {
		node, ok := g.Node(id)
		if !ok {
			continue
		}
		node.ASPA = record
		node.ASPAEnabled = true
	}
	for id, record := range r.ASCONESPublishers {
		node, ok := g.Node(id)
		if !ok {
			continue
		}
		node.ASCONES = record
	}
}

// applyAttackerRole sets attacker's policy per step 3 of spec.md §4.8: forced
// to RouteLeak, forced to Default (forged-origin), or left as whatever the
// deployment overlay installed (standard hijack).
func (r Recipe) applyAttackerRole(g *asgraph.Graph, attacker asgraph.ASID) {
	node, ok := g.Node(attacker)
	if !ok {
		return
	}
	switch r.Role {
	case RoleRouteLeak:
		if r.RouteLeakPolicy != nil {
			node.Policy = r.RouteLeakPolicy(g)
		} else {
			node.Policy = policy.NewRouteLeak()
		}
	case RoleForgedOrigin:
		if r.ForgedOriginPolicy != nil {
			node.Policy = r.ForgedOriginPolicy(g)
		} else {
			node.Policy = policy.NewDefault()
		}
	}
}
