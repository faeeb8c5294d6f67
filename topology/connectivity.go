package topology

import (
	"strconv"

	basicgraph "github.com/Emeline-1/basic_graph"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

// CheckConnected reports an error if g is not a single connected component
// under its undirected adjacency (ignoring relation direction): a
// malformed-input condition, the topology equivalent of an edge referencing
// a missing AS.
func CheckConnected(g *asgraph.Graph) error {
	ids := g.IDs()
	if len(ids) == 0 {
		return nil
	}

	bg := basicgraph.New()
	for _, id := range ids {
		node, _ := g.Node(id)
		for neighbor := range node.Neighbors {
			bg.Add_edge(strconv.FormatUint(uint64(id), 10), strconv.FormatUint(uint64(neighbor), 10))
		}
	}

	bg.Set_iterator()
	components := 0
	for bg.Next_connected_component() {
		components++
	}
	if components > 1 {
		return &asgraph.GraphError{
			Op:      "CheckConnected",
			Message: "topology splits into " + strconv.Itoa(components) + " disconnected components",
		}
	}
	return nil
}
