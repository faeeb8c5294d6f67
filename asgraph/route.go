package asgraph

// Route is an immutable, ordered, non-empty sequence of AS handles
// delivered to the final AS. It is represented as a cons-list: extending a
// route allocates exactly one new head and shares the rest of the chain
// with the route it was extended from (spec's "reference-counted immutable
// vector" guidance), which is cheap because propagation frequently extends
// the same announced route out to many neighbors at once.
type Route struct {
	head ASID
	tail *Route

	length         int
	cycle          bool
	originInvalid  bool
	pathEndInvalid bool
	authenticated  bool
}

// NewRoute creates the trivial route [origin], as seeded at the start of
// find_routes_to. originBGPSecEnabled is origin's own BGPsec feature flag:
// Authenticated() must be true only when every AS on the path, including
// the origin itself, has BGPsec enabled, so the trivial route's
// authenticated bit has to start from that flag rather than assuming it.
func NewRoute(origin ASID, originBGPSecEnabled bool) *Route {
	return &Route{head: origin, length: 1, authenticated: originBGPSecEnabled}
}

// NewForgedRoute builds a route from an explicit path (origin-to-final
// order), as used by attack injection. Forged routes are never
// authenticated, regardless of the path's AS feature flags.
func NewForgedRoute(path []ASID, originInvalid, pathEndInvalid bool) *Route {
	if len(path) == 0 {
		panic("asgraph: NewForgedRoute called with empty path")
	}
	seen := make(map[ASID]bool, len(path))
	var r *Route
	for i, id := range path {
		r = &Route{
			head:           id,
			tail:           r,
			length:         i + 1,
			cycle:          seen[id],
			originInvalid:  originInvalid,
			pathEndInvalid: pathEndInvalid,
			authenticated:  false,
		}
		seen[id] = true
	}
	return r
}

// Extend returns a new route that appends next to r, as the result of next
// accepting an announcement from r.Final(). nextBGPSecEnabled is whether
// next has BGPsec enabled, used to derive Authenticated().
func (r *Route) Extend(next ASID, nextBGPSecEnabled bool) *Route {
	return &Route{
		head:           next,
		tail:           r,
		length:         r.length + 1,
		cycle:          r.cycle || r.contains(next),
		originInvalid:  r.originInvalid,
		pathEndInvalid: r.pathEndInvalid,
		authenticated:  r.authenticated && nextBGPSecEnabled,
	}
}

func (r *Route) contains(id ASID) bool {
	for cur := r; cur != nil; cur = cur.tail {
		if cur.head == id {
			return true
		}
	}
	return false
}

// Path materializes the route as an ordered slice, path[0] is the origin,
// path[len-1] is the final AS.
func (r *Route) Path() []ASID {
	path := make([]ASID, r.length)
	i := r.length - 1
	for cur := r; cur != nil; cur = cur.tail {
		path[i] = cur.head
		i--
	}
	return path
}

// Origin is the AS that originated the route, path[0].
func (r *Route) Origin() ASID {
	cur := r
	for cur.tail != nil {
		cur = cur.tail
	}
	return cur.head
}

// Final is the AS this route value was delivered to, path[len-1].
func (r *Route) Final() ASID { return r.head }

// FirstHop is the neighbor that announced this route to Final, path[len-2].
// FirstHop panics on a length-1 route (the origin's own trivial route),
// mirroring the invariant that every stored non-origin route has at least
// two hops.
func (r *Route) FirstHop() ASID {
	if r.tail == nil {
		panic("asgraph: FirstHop called on a length-1 route")
	}
	return r.tail.head
}

// Length is the number of AS hops in the path.
func (r *Route) Length() int { return r.length }

// ContainsCycle reports whether some AS handle appears twice in the path.
func (r *Route) ContainsCycle() bool { return r.cycle }

// OriginInvalid reports whether this route was injected by a forged-origin
// or path-hijack attack.
func (r *Route) OriginInvalid() bool { return r.originInvalid }

// PathEndInvalid reports whether the attacker fabricated the last hop
// before the origin.
func (r *Route) PathEndInvalid() bool { return r.pathEndInvalid }

// Authenticated reports whether every AS on the path has BGPsec enabled and
// the route was not forged.
func (r *Route) Authenticated() bool { return r.authenticated }
