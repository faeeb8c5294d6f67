package asgraph

import "fmt"

// GraphError reports malformed-input conditions detected at graph
// construction: a missing AS referenced by an edge, or a cyclic relation
// claim (A provider of B and B provider of A).
type GraphError struct {
	Op      string
	Message string
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("asgraph: %s: %s", e.Op, e.Message)
}

// InvariantError reports a detected invariant violation: a route-leak
// scorer finding an offending AS that does not match the designated
// attacker, or a path invariant broken during propagation. These indicate a
// bug, not a user-facing condition.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("asgraph: invariant violation in %s: %s", e.Op, e.Message)
}
