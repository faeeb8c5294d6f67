package topology

import (
	"math/rand"
	"sort"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

// Strategy names a deployment-selection scheme: which ASes in a topology
// upgrade to a given security policy first, per spec.md §6's "deployment
// strategies: top-k by customer-cone, bottom-k by customer-cone, uniform
// random, tier-restricted."
type Strategy int

const (
	TopKByCone Strategy = iota
	BottomKByCone
	UniformRandom
	TierOneAndTwoByCone
)

// SelectDeployment returns the AS ids that should deploy a security
// mechanism, given a target fraction of the topology (0.0 to 1.0) and a
// selection strategy. UniformRandom consults rng; rng may be nil for the
// other three strategies.
func SelectDeployment(g *asgraph.Graph, fraction float64, strategy Strategy, rng *rand.Rand) []asgraph.ASID {
	ids := g.IDs()
	k := int(fraction * float64(len(ids)))
	if k < 0 {
		k = 0
	}
	if k > len(ids) {
		k = len(ids)
	}

	switch strategy {
	case TopKByCone:
		return g.IdentifyTopISPs(k)
	case BottomKByCone:
		return bottomKByCone(g, ids, k)
	case TierOneAndTwoByCone:
		return g.IdentifyTopISPsFromTierOneAndTwo(k)
	case UniformRandom:
		return uniformRandom(ids, k, rng)
	default:
		return nil
	}
}

// bottomKByCone returns the k ASes with the smallest customer-cone size,
// ascending, ties broken by smaller AS id -- the mirror image of
// Graph.IdentifyTopISPs.
func bottomKByCone(g *asgraph.Graph, universe []asgraph.ASID, k int) []asgraph.ASID {
	sorted := make([]asgraph.ASID, len(universe))
	copy(sorted, universe)
	sizes := make(map[asgraph.ASID]int, len(universe))
	for _, id := range universe {
		sizes[id] = len(g.CustomerCone(id))
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sizes[sorted[i]] != sizes[sorted[j]] {
			return sizes[sorted[i]] < sizes[sorted[j]]
		}
		return sorted[i] < sorted[j]
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}

// uniformRandom draws k distinct ids from universe uniformly at random. The
// universe is sorted first so the same rng seed produces the same
// deployment set regardless of the graph's internal map iteration order.
func uniformRandom(universe []asgraph.ASID, k int, rng *rand.Rand) []asgraph.ASID {
	sorted := make([]asgraph.ASID, len(universe))
	copy(sorted, universe)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	rng.Shuffle(len(sorted), func(i, j int) { sorted[i], sorted[j] = sorted[j], sorted[i] })
	if k > len(sorted) {
		k = len(sorted)
	}
	picked := sorted[:k]
	sort.Slice(picked, func(i, j int) bool { return picked[i] < picked[j] })
	return picked
}
