package main

import (
	"log"
	"os"

	"github.com/Emeline-1/bgpsecsim/asgraph"
	"github.com/Emeline-1/bgpsecsim/tree"
)

// runExplain implements `bgpsecsim explain`: load a topology, run the
// propagation convergence every other subcommand runs implicitly, and print
// the resulting path tree every AS ends up with to -victim as nested ASCII
// branches, using tree.Tree the way the teacher's rib-parsing tools print an
// AS's upstream path set.
func runExplain(args []string) {
	file, cacheFile, victim := handleArgsExplain(args)

	g, err := loadTopology(file, cacheFile)
	if err != nil {
		log.Fatal(err)
	}
	victimID := asgraph.ASID(victim)
	if _, ok := g.Node(victimID); !ok {
		log.Fatalf("AS%d is not in the topology", victim)
	}
	if err := g.FindRoutesTo(victimID); err != nil {
		log.Fatal(err)
	}

	t := tree.Tree{}
	noop := func(string, interface{}) {}
	for _, id := range g.IDs() {
		node, _ := g.Node(id)
		route, ok := node.Routes[victimID]
		if !ok {
			continue
		}
		t.Add(asPathStrings(route.Path()), noop, noop, nil)
	}

	log.Printf("path tree to AS%d:", victim)
	t.Fprint(os.Stdout, true, "")
}

func asPathStrings(path []asgraph.ASID) []string {
	out := make([]string, len(path))
	for i, id := range path {
		out[i] = id.String()
	}
	return out
}
