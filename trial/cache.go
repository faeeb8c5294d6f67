package trial

import (
	"strconv"
	"sync"

	radix "github.com/Emeline-1/radix"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

// RouteCache memoizes the genuine (pre-attack) routing-table snapshot
// FindRoutesTo(origin) produces, keyed by the decimal string of origin's AS
// id via Emeline-1/radix's prefix tree (repurposed from indexing IP
// prefixes to indexing AS-id strings, per SPEC_FULL.md §4). Routes are
// immutable values, so a snapshot taken against one graph clone is safe to
// replay onto another -- the cache is shared across every Harness worker
// behind a mutex.
//
// Harness only consults this for RoleHijackNHops trials, where the
// recipe's attacker-role step is a no-op: the genuine table it would
// compute for a given victim is identical no matter which attacker the
// trial names, so the first trial against a victim primes the cache and
// every later trial sharing that victim skips recomputation.
type RouteCache struct {
	mu   sync.Mutex
	tree *radix.Tree
}

// NewRouteCache returns an empty cache.
func NewRouteCache() *RouteCache {
	return &RouteCache{tree: radix.New()}
}

// Get returns the cached snapshot for origin, if present.
func (c *RouteCache) Get(origin asgraph.ASID) (map[asgraph.ASID]*asgraph.Route, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.tree.Get(originKey(origin))
	if !ok {
		return nil, false
	}
	snapshot, ok := v.(map[asgraph.ASID]*asgraph.Route)
	return snapshot, ok
}

// Put stores snapshot for origin, replacing any previous entry.
func (c *RouteCache) Put(origin asgraph.ASID, snapshot map[asgraph.ASID]*asgraph.Route) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree.Insert(originKey(origin), snapshot)
}

func originKey(origin asgraph.ASID) string {
	return strconv.FormatUint(uint64(origin), 10)
}

// snapshotRoutes captures, for every AS currently holding a route to
// origin, that route value. Routes are immutable so no deep copy is
// needed.
func snapshotRoutes(g *asgraph.Graph, origin asgraph.ASID) map[asgraph.ASID]*asgraph.Route {
	snapshot := make(map[asgraph.ASID]*asgraph.Route)
	for _, id := range g.IDs() {
		node, _ := g.Node(id)
		if route, ok := node.Routes[origin]; ok {
			snapshot[id] = route
		}
	}
	return snapshot
}

// restoreRoutes installs a previously captured snapshot into g's routing
// tables for origin.
func restoreRoutes(g *asgraph.Graph, origin asgraph.ASID, snapshot map[asgraph.ASID]*asgraph.Route) {
	for id, route := range snapshot {
		node, ok := g.Node(id)
		if !ok {
			continue
		}
		node.Routes[origin] = route
	}
}
