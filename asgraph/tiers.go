package asgraph

import "sort"

// Tier classifies an AS by its position in the customer/provider hierarchy.
type Tier int

const (
	Tier1 Tier = iota // no provider neighbors
	Tier2             // has both customers and providers
	Tier3             // no customer neighbors
)

// TierOf classifies id. id must exist in the graph.
func (g *Graph) TierOf(id ASID) Tier {
	n := g.nodes[id]
	hasProvider, hasCustomer := false, false
	for _, rel := range n.Neighbors {
		switch rel {
		case PROVIDER:
			hasProvider = true
		case CUSTOMER:
			hasCustomer = true
		}
	}
	switch {
	case !hasProvider:
		return Tier1
	case !hasCustomer:
		return Tier3
	default:
		return Tier2
	}
}

// TierOneIDs, TierTwoIDs and TierThreeIDs return the AS ids in each tier, in
// ascending order.
func (g *Graph) TierOneIDs() []ASID   { return g.idsInTiers(Tier1) }
func (g *Graph) TierTwoIDs() []ASID   { return g.idsInTiers(Tier2) }
func (g *Graph) TierThreeIDs() []ASID { return g.idsInTiers(Tier3) }

func (g *Graph) idsInTiers(tiers ...Tier) []ASID {
	want := make(map[Tier]bool, len(tiers))
	for _, t := range tiers {
		want[t] = true
	}
	var ids []ASID
	for _, id := range g.IDs() {
		if want[g.TierOf(id)] {
			ids = append(ids, id)
		}
	}
	return ids
}

// CustomerCone returns, for id, the set of ASes transitively reachable by
// following CUSTOMER edges outward (id's direct and indirect customers),
// not including id itself. The provider/customer graph is assumed acyclic,
// as real business relationships are; a defensive visited-set guard makes
// this safe even if that assumption is violated by malformed input.
func (g *Graph) CustomerCone(id ASID) map[ASID]struct{} {
	cone := make(map[ASID]struct{})
	var walk func(ASID)
	walk = func(cur ASID) {
		n, ok := g.nodes[cur]
		if !ok {
			return
		}
		for neighbor, rel := range n.Neighbors {
			if rel != CUSTOMER {
				continue
			}
			if _, seen := cone[neighbor]; seen {
				continue
			}
			cone[neighbor] = struct{}{}
			walk(neighbor)
		}
	}
	walk(id)
	return cone
}

// customerConeSizes computes len(CustomerCone(id)) once for every id in
// universe, for the lifetime of one IdentifyTopISPs call.
func (g *Graph) customerConeSizes(universe []ASID) map[ASID]int {
	sizes := make(map[ASID]int, len(universe))
	for _, id := range universe {
		sizes[id] = len(g.CustomerCone(id))
	}
	return sizes
}

// IdentifyTopISPs returns the k ASes with the largest customer-cone size,
// descending, ties broken by smaller AS id.
func (g *Graph) IdentifyTopISPs(k int) []ASID {
	return g.identifyTopISPsFrom(g.IDs(), k)
}

// IdentifyTopISPsFromTierOneAndTwo restricts the universe to tier-1 and
// tier-2 ASes, as used by deployment strategies that only consider transit
// providers.
func (g *Graph) IdentifyTopISPsFromTierOneAndTwo(k int) []ASID {
	return g.identifyTopISPsFrom(g.idsInTiers(Tier1, Tier2), k)
}

func (g *Graph) identifyTopISPsFrom(universe []ASID, k int) []ASID {
	sizes := g.customerConeSizes(universe)
	ids := make([]ASID, len(universe))
	copy(ids, universe)
	sort.Slice(ids, func(i, j int) bool {
		if sizes[ids[i]] != sizes[ids[j]] {
			return sizes[ids[i]] > sizes[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if k > len(ids) {
		k = len(ids)
	}
	if k < 0 {
		k = 0
	}
	return ids[:k]
}
