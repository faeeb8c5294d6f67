// Package verify implements the ASPA and ASCONES path-verification
// algorithms from the two IETF drafts, operating on an asgraph.Route and
// the per-AS attestation records stored on asgraph.Node.
package verify

// Outcome is the result of an ASPA or ASCONES verification: Valid (no
// contradicting attestation), Invalid (a contradicting attestation was
// found), or Unknown (no attestation covers the needed hop).
type Outcome int

const (
	Valid Outcome = iota
	Unknown
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "Valid"
	case Unknown:
		return "Unknown"
	case Invalid:
		return "Invalid"
	default:
		return "?"
	}
}

// hopResult is the per-hop classification shared by both algorithms: given
// a customer-candidate X and a provider-candidate Y, whether the relevant
// attestation (X's ASPA record for ASPA, Y's ASCONES record for ASCONES)
// confirms, denies, or is silent on the X->Y step.
type hopResult int

const (
	hopProviderPlus hopResult = iota
	hopNotProviderPlus
	hopNoAttestation
)

// downstreamOutcome applies the shared downstream ramp arithmetic (spec §4.4 and
// §4.5 use identical arithmetic; only the hop function differs), given the
// distinct-AS sequence as(1)..as(N) in origin-to-neighbor order (as(N) is
// the validator's announcing neighbor; the validator itself is excluded --
// callers must pass a path already trimmed of its own last element).
func downstreamOutcome(as []int, hop func(x, y int) hopResult) Outcome {
	n := len(as)
	if n <= 2 {
		return Valid
	}

	uMin := n + 1
	for i := 2; i <= n; i++ {
		if hop(as[i-2], as[i-1]) == hopNotProviderPlus {
			uMin = i
			break
		}
	}
	vMax := 0
	for v := n - 1; v >= 1; v-- {
		if hop(as[v], as[v-1]) == hopNotProviderPlus {
			vMax = v
			break
		}
	}
	if uMin <= vMax {
		return Invalid
	}

	k := 1
	for i := 2; i <= n; i++ {
		if hop(as[i-2], as[i-1]) == hopProviderPlus {
			k = i
		} else {
			break
		}
	}
	l := n
	for j := n - 1; j >= 1; j-- {
		if hop(as[j], as[j-1]) == hopProviderPlus {
			l = j
		} else {
			break
		}
	}

	if l-k <= 1 {
		return Valid
	}
	return Unknown
}

// upstreamOutcome applies the shared upstream-walk arithmetic: N < 1 never
// happens (the path always has at least the origin once the validator is
// excluded), N == 1 is trivially Valid (a single AS announced directly to
// the validator, no hop left to check), otherwise walk the hops in
// origin-to-neighbor order and take the worst outcome seen (Invalid beats
// Unknown beats Valid).
func upstreamOutcome(as []int, hop func(x, y int) hopResult) Outcome {
	n := len(as)
	if n < 1 {
		panic("verify: upstream walk called with an empty AS sequence")
	}
	if n == 1 {
		return Valid
	}
	result := Valid
	for i := 2; i <= n; i++ {
		switch hop(as[i-2], as[i-1]) {
		case hopNotProviderPlus:
			return Invalid
		case hopNoAttestation:
			result = Unknown
		}
	}
	return result
}

// collapseConsecutiveDuplicates removes AS-prepending runs from path,
// keeping only transitions between distinct consecutive ASes, mirroring
// the draft's "collapse prepends in the AS_SEQUENCE" step. Adapted from the
// teacher's misc.go remove_duplicates, generalized from string slices to
// the generic handle type via an equality-by-conversion wrapper in the
// callers (asgraph.ASID).
func collapseConsecutiveDuplicates(path []int) []int {
	if len(path) == 0 {
		return path
	}
	out := make([]int, 0, len(path))
	out = append(out, path[0])
	for _, id := range path[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
