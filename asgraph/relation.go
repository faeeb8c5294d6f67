// Package asgraph implements the AS-graph data model: business relations,
// routes, per-AS state, and the best-path propagation engine.
package asgraph

import "fmt"

// ASID is an opaque AS identifier. Ordering on ASID is used as the
// deterministic tie-break in path selection and in neighbor iteration.
type ASID uint32

func (a ASID) String() string {
	return fmt.Sprintf("AS%d", uint32(a))
}

// Relation is the Gao-Rexford business relation an AS has with a neighbor.
// The ordinal values are significant: smaller is preferred in local
// preference comparisons (CUSTOMER beats PEER beats PROVIDER).
type Relation int

const (
	CUSTOMER Relation = 1
	PEER     Relation = 2
	PROVIDER Relation = 3
)

func (r Relation) String() string {
	switch r {
	case CUSTOMER:
		return "CUSTOMER"
	case PEER:
		return "PEER"
	case PROVIDER:
		return "PROVIDER"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether r is one of the three known relations.
func (r Relation) Valid() bool {
	switch r {
	case CUSTOMER, PEER, PROVIDER:
		return true
	default:
		return false
	}
}

// Inverse returns the relation the neighbor holds with this AS: a PROVIDER
// edge from A to B means B sees A as a CUSTOMER, and PEER is symmetric.
func (r Relation) Inverse() Relation {
	switch r {
	case CUSTOMER:
		return PROVIDER
	case PROVIDER:
		return CUSTOMER
	case PEER:
		return PEER
	default:
		return r
	}
}
