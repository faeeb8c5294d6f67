package trial

import (
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/Emeline-1/bgpsecsim/asgraph"
	"github.com/Emeline-1/bgpsecsim/attack"
	"github.com/Emeline-1/bgpsecsim/score"
)

// Trial is one (victim, attacker) pair to run against the harness's recipe.
type Trial struct {
	Victim, Attacker asgraph.ASID
}

// Result is one trial's outcome: the success-rate rational in [0, 100], or
// an error if a fatal condition (propagation failure, invariant violation)
// aborted the trial.
type Result struct {
	Trial Trial
	Value *big.Rat
	Err   error
}

// Harness is a long-lived worker pool draining a stream of trials, each
// against its own clone of a pristine graph -- spec.md §4.8/§5's "if the
// graph topology is cloned per worker, no synchronization is needed" model.
// Workers is fixed at construction; cardinality is the caller's choice
// (spec.md §4.8 cites 250 as the reference default).
type Harness struct {
	recipe  Recipe
	cache   *RouteCache
	in      chan Trial
	out     chan Result
	stopped int32
	wg      sync.WaitGroup
}

// NewHarness starts workers goroutines, each holding its own graph.Clone(),
// and returns a Harness ready to accept trials via Submit.
func NewHarness(graph *asgraph.Graph, workers int, recipe Recipe) *Harness {
	if workers < 1 {
		workers = 1
	}
	h := &Harness{
		recipe: recipe,
		cache:  NewRouteCache(),
		in:     make(chan Trial),
		out:    make(chan Result),
	}
	// Each worker gets its own rand.Rand, seeded off a single master stream
	// derived from recipe.DeploymentSeed, so that a resampled deployment
	// (Recipe.DeploymentPolicy != nil) draws an independent sequence per
	// worker rather than every worker replaying the same draws -- spec.md
	// §5's "statistical independence across trials". rand.Rand is not safe
	// for concurrent use, so this must stay one instance per goroutine
	// rather than one shared across the pool.
	master := rand.New(rand.NewSource(recipe.DeploymentSeed))
	for i := 0; i < workers; i++ {
		h.wg.Add(1)
		go h.worker(graph.Clone(), rand.New(rand.NewSource(master.Int63())))
	}
	go func() {
		h.wg.Wait()
		close(h.out)
	}()
	return h
}

// Submit enqueues a trial, blocking until a worker is free to accept it.
// Submit must not be called after Stop.
func (h *Harness) Submit(t Trial) {
	h.in <- t
}

// Results is the stream of completed trial outcomes, delivered in
// completion order rather than submission order (spec.md §5).
func (h *Harness) Results() <-chan Result {
	return h.out
}

// Stop closes the input channel so every worker, whether mid-wait or about
// to block on the next receive, unblocks and exits once it finishes any
// trial already in flight -- spec.md §4.8's "workers drain their current
// trial (no mid-trial cancellation), then exit", achieved here by the
// channel close itself serving as the sentinel every worker observes
// (rather than a distinguished sentinel Trial value pushed per worker).
// Stop is safe to call more than once or concurrently.
func (h *Harness) Stop() {
	if atomic.CompareAndSwapInt32(&h.stopped, 0, 1) {
		close(h.in)
	}
}

func (h *Harness) worker(g *asgraph.Graph, rng *rand.Rand) {
	defer h.wg.Done()
	for t := range h.in {
		h.out <- h.runTrial(g, rng, t)
	}
}

// runTrial performs spec.md §4.8's seven-step sequence. A victim or
// attacker id absent from the graph is a non-fatal degenerate trial
// (spec.md §7's "Missing AS at trial time"): logged, scored zero, and the
// harness continues.
func (h *Harness) runTrial(g *asgraph.Graph, rng *rand.Rand, t Trial) (res Result) {
	// A panic inside propagation or verification (such as an unknown
	// relation reaching the ASPA/ASCONES walk) aborts only this trial: it is
	// logged and returned as an error Result, and the worker carries on.
	defer func() {
		if p := recover(); p != nil {
			log.Printf("trial: recovered from panic: %v", p)
			g.ClearRoutingTables()
			res = Result{Trial: t, Err: &asgraph.InvariantError{Op: "runTrial", Message: fmt.Sprint(p)}}
		}
	}()

	if _, ok := g.Node(t.Victim); !ok {
		log.Printf("trial: unknown victim %s, reporting degenerate zero-success trial", t.Victim)
		return Result{Trial: t, Value: big.NewRat(0, 1)}
	}
	if _, ok := g.Node(t.Attacker); !ok {
		log.Printf("trial: unknown attacker %s, reporting degenerate zero-success trial", t.Attacker)
		return Result{Trial: t, Value: big.NewRat(0, 1)}
	}

	h.recipe.apply(g, rng)
	h.recipe.applyAttackerRole(g, t.Attacker)

	// The cache is only sound when every trial against a given victim sees
	// the same policy landscape: a resampled deployment (DeploymentPolicy
	// set) changes which ASes run which policy from one trial to the next,
	// so a cached pre-attack snapshot from an earlier draw cannot be reused
	// -- each such trial must recompute its own genuine routing table.
	resampled := h.recipe.DeploymentPolicy != nil

	g.ClearRoutingTables()
	if h.recipe.Role == RoleHijackNHops && !resampled {
		if snapshot, ok := h.cache.Get(t.Victim); ok {
			restoreRoutes(g, t.Victim, snapshot)
		} else if err := g.FindRoutesTo(t.Victim); err != nil {
			log.Printf("trial: %v", err)
			g.ClearRoutingTables()
			return Result{Trial: t, Err: err}
		} else {
			h.cache.Put(t.Victim, snapshotRoutes(g, t.Victim))
		}
	} else if err := g.FindRoutesTo(t.Victim); err != nil {
		log.Printf("trial: %v", err)
		g.ClearRoutingTables()
		return Result{Trial: t, Err: err}
	}

	if h.recipe.Role == RoleHijackNHops || h.recipe.Role == RoleForgedOrigin {
		n := h.recipe.HijackHops
		if h.recipe.Role == RoleForgedOrigin {
			n = 1
		}
		if err := attack.HijackNHops(g, t.Victim, t.Attacker, n); err != nil {
			log.Printf("trial: %v", err)
			g.ClearRoutingTables()
			return Result{Trial: t, Err: err}
		}
	}

	var value *big.Rat
	var err error
	if h.recipe.Role == RoleRouteLeak {
		value, err = score.RouteLeakSuccessRate(g, t.Victim, t.Attacker)
	} else {
		value = score.AttackerSuccessRate(g, t.Victim, t.Attacker)
	}

	g.ClearRoutingTables()
	if err != nil {
		log.Printf("trial: %v", err)
		return Result{Trial: t, Err: err}
	}
	return Result{Trial: t, Value: value}
}
