package threshold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openbike/bike-go/pkg/bike/params"
	"github.com/openbike/bike-go/pkg/bike/threshold"
)

func TestAffineMonotone(t *testing.T) {
	l := params.Level1
	prev := threshold.Affine(l.ThresholdA, l.ThresholdB, l.ThresholdC, 0)
	for s := 1; s <= l.D; s++ {
		next := threshold.Affine(l.ThresholdA, l.ThresholdB, l.ThresholdC, s)
		require.GreaterOrEqual(t, next, prev)
		prev = next
	}
}

func TestAffineFloorsAtC(t *testing.T) {
	l := params.Level1
	got := threshold.Affine(l.ThresholdA, l.ThresholdB, l.ThresholdC, 0)
	require.GreaterOrEqual(t, got, l.ThresholdC)
}

func TestAffineKnownLevel1(t *testing.T) {
	l := params.Level1
	// T(0) = floor(max(13.530, 36)) = 36.
	require.Equal(t, 36, threshold.Affine(l.ThresholdA, l.ThresholdB, l.ThresholdC, 0))
}

func TestInfoTheoreticWithinColumnWeight(t *testing.T) {
	l := params.Level1
	for _, s := range []int{1, l.D, l.T, 2 * l.T} {
		got := threshold.ComputeInfoTheoretic(l.NBits(), l.D, l.D, s, l.T)
		require.GreaterOrEqual(t, got, 0)
		require.LessOrEqual(t, got, l.D+1)
	}
}

func TestOracleDispatchesByProfile(t *testing.T) {
	l := params.Level1
	affine := threshold.NewOracle(params.Affine, l)
	infoTheoretic := threshold.NewOracle(params.InfoTheoretic, l)

	require.Equal(t, threshold.Affine(l.ThresholdA, l.ThresholdB, l.ThresholdC, 10), affine.Threshold(10))
	require.Equal(t, threshold.ComputeInfoTheoretic(l.NBits(), l.D, l.D, 10, l.T), infoTheoretic.Threshold(10))
}

func TestInfoTheoreticNondecreasingInSyndromeWeight(t *testing.T) {
	l := params.Level1
	prev := threshold.ComputeInfoTheoretic(l.NBits(), l.D, l.D, 1, l.T)
	for s := 2; s <= l.T; s++ {
		next := threshold.ComputeInfoTheoretic(l.NBits(), l.D, l.D, s, l.T)
		require.GreaterOrEqual(t, next, prev)
		prev = next
	}
}
