package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/Emeline-1/bgpsecsim/asgraph"
	"github.com/Emeline-1/bgpsecsim/topology"
)

// loadTopology reads the as-rel file at file (through cacheFile's sqlite
// cache when set) and rejects a topology that splits into more than one
// connected component, the malformed-input check spec.md §7 calls for.
func loadTopology(file, cacheFile string) (*asgraph.Graph, error) {
	var g *asgraph.Graph
	if cacheFile != "" {
		cache, err := topology.OpenCache(cacheFile)
		if err != nil {
			return nil, err
		}
		defer cache.Close()
		g, err = topology.LoadGraphCached(cache, file)
		if err != nil {
			return nil, err
		}
	} else {
		loaded, err := topology.LoadGraph(file)
		if err != nil {
			return nil, err
		}
		g = loaded
	}
	if err := topology.CheckConnected(g); err != nil {
		return nil, err
	}
	return g, nil
}

func parseStrategy(name string) (topology.Strategy, bool) {
	switch name {
	case "topk":
		return topology.TopKByCone, true
	case "bottomk":
		return topology.BottomKByCone, true
	case "random":
		return topology.UniformRandom, true
	case "tier12":
		return topology.TierOneAndTwoByCone, true
	default:
		return 0, false
	}
}

// runTopology implements `bgpsecsim topology`: load, validate, and report
// tier counts and (optionally) a deployment-strategy preview.
func runTopology(args []string) {
	file, cacheFile, strategyName, fraction, seed := handleArgsTopology(args)

	g, err := loadTopology(file, cacheFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d ASes", g.NumNodes())
	log.Printf("tier-1: %d, tier-2: %d, tier-3: %d",
		len(g.TierOneIDs()), len(g.TierTwoIDs()), len(g.TierThreeIDs()))

	if strategyName == "" {
		return
	}
	strategy, ok := parseStrategy(strategyName)
	if !ok {
		log.Fatalf("unknown -strategy %q (want topk, bottomk, random, tier12)", strategyName)
	}
	var rng *rand.Rand
	if strategy == topology.UniformRandom {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	selected := topology.SelectDeployment(g, fraction, strategy, rng)
	log.Printf("%s deployment at fraction %.3f selects %d ASes:", strategyName, fraction, len(selected))
	for _, id := range selected {
		log.Printf("  %s", id)
	}
}
