package verify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// providerPlusHop builds a hop closure from an explicit set of (x,y) pairs
// known to be Provider+; anything else is Not Provider+ unless listed in
// silent, in which case it is No Attestation.
func providerPlusHop(plus map[[2]int]bool, silent map[[2]int]bool) func(x, y int) hopResult {
	return func(x, y int) hopResult {
		if silent[[2]int{x, y}] {
			return hopNoAttestation
		}
		if plus[[2]int{x, y}] {
			return hopProviderPlus
		}
		return hopNotProviderPlus
	}
}

func TestUpstreamOutcome_TrivialPathIsValid(t *testing.T) {
	hop := providerPlusHop(nil, nil)
	require.Equal(t, Valid, upstreamOutcome([]int{1}, hop))
}

func TestUpstreamOutcome_AllProviderPlusIsValid(t *testing.T) {
	plus := map[[2]int]bool{{1, 2}: true, {2, 3}: true}
	hop := providerPlusHop(plus, nil)
	require.Equal(t, Valid, upstreamOutcome([]int{1, 2, 3}, hop))
}

func TestUpstreamOutcome_OneBadHopIsInvalid(t *testing.T) {
	plus := map[[2]int]bool{{1, 2}: true}
	hop := providerPlusHop(plus, nil)
	require.Equal(t, Invalid, upstreamOutcome([]int{1, 2, 3}, hop))
}

func TestUpstreamOutcome_UnattestedHopIsUnknown(t *testing.T) {
	plus := map[[2]int]bool{{1, 2}: true}
	silent := map[[2]int]bool{{2, 3}: true}
	hop := providerPlusHop(plus, silent)
	require.Equal(t, Unknown, upstreamOutcome([]int{1, 2, 3}, hop))
}

// TestUpstreamOutcome_LastHopBeforeValidatorIsNotConsulted guards the exact
// regression this package once had: as passed here already has the
// validator trimmed off by the caller (collapsedPath), so a two-element
// path must resolve on as(1)->as(2) alone and never synthesize a third hop
// into whatever AS happens to be validating.
func TestUpstreamOutcome_LastHopBeforeValidatorIsNotConsulted(t *testing.T) {
	hop := providerPlusHop(map[[2]int]bool{{1, 2}: true}, nil)
	require.Equal(t, Valid, upstreamOutcome([]int{1, 2}, hop))
}

func TestUpstreamOutcome_PanicsOnEmptyPath(t *testing.T) {
	require.Panics(t, func() {
		upstreamOutcome(nil, providerPlusHop(nil, nil))
	})
}

func TestDownstreamOutcome_ShortPathIsValid(t *testing.T) {
	hop := providerPlusHop(nil, nil)
	require.Equal(t, Valid, downstreamOutcome([]int{1, 2}, hop))
}

func TestDownstreamOutcome_FullRampIsValid(t *testing.T) {
	// 1 -> 2 -> 3 -> 4 -> 5, up-ramp through 3, down-ramp from 3: a clean
	// valley with no contradicting hop.
	plus := map[[2]int]bool{{1, 2}: true, {2, 3}: true, {5, 4}: true, {4, 3}: true}
	hop := providerPlusHop(plus, nil)
	require.Equal(t, Valid, downstreamOutcome([]int{1, 2, 3, 4, 5}, hop))
}

func TestDownstreamOutcome_ContradictingHopsAreInvalid(t *testing.T) {
	// Both an up-ramp violation at u=2 and a down-ramp violation at v=4,
	// with u_min <= v_max.
	hop := providerPlusHop(nil, nil)
	require.Equal(t, Invalid, downstreamOutcome([]int{1, 2, 3, 4, 5}, hop))
}

func TestDownstreamOutcome_GapBetweenRampsIsUnknown(t *testing.T) {
	// Up-ramp confirmed through AS 2 only, down-ramp confirmed from AS 5
	// only; every other hop is unattested (not contradicted), leaving a gap
	// wider than 1 between the two ramps.
	plus := map[[2]int]bool{{1, 2}: true, {6, 5}: true}
	silent := map[[2]int]bool{
		{2, 3}: true, {3, 4}: true, {4, 5}: true, {5, 6}: true,
		{5, 4}: true, {4, 3}: true, {3, 2}: true, {2, 1}: true,
	}
	hop := providerPlusHop(plus, silent)
	require.Equal(t, Unknown, downstreamOutcome([]int{1, 2, 3, 4, 5, 6}, hop))
}

func TestCollapseConsecutiveDuplicates(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, collapseConsecutiveDuplicates([]int{1, 1, 2, 3, 3}))
	require.Equal(t, []int{}, collapseConsecutiveDuplicates([]int{}))
}
