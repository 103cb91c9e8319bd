package naive_bayes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func statsOf(label string, features ...FeatureStats) ClassStats {
	return ClassStats{Label: label, Count: 1, Prior: 0.5, Features: features}
}

func TestSmoothFirstFeaturePath(t *testing.T) {
	stats := []ClassStats{
		statsOf("x", FeatureStats{Mean: 0, StdDev: 1}, FeatureStats{Mean: 1, StdDev: 2}),
		statsOf("y", FeatureStats{Mean: 4, StdDev: 0.5}, FeatureStats{Mean: 3, StdDev: 0.2}),
	}
	ref := []float64{0.5, 1}

	sm := smooth(stats, ref, 0.1, 1.1)
	assert.Equal(t, PathFirstFeature, sm.path)

	for c, cs := range sm.stats {
		assert.InDelta(t, stats[c].Features[0].StdDev*1.1, cs.Features[0].StdDev, 1e-12)
		assert.Equal(t, stats[c].Features[1], cs.Features[1])
		assert.False(t, sm.smoothed[c])

		require.True(t, sm.after[c].Recorded)
		want := GaussianDensity(ref[0], cs.Features[0].Mean, cs.Features[0].StdDev)
		assert.InDelta(t, want, sm.after[c].Value, 1e-15)
	}

	// input untouched
	assert.Equal(t, 1.0, stats[0].Features[0].StdDev)
	assert.Equal(t, 0.5, stats[1].Features[0].StdDev)
}

func TestSmoothFullScanPath(t *testing.T) {
	stats := []ClassStats{
		statsOf("sharp", FeatureStats{Mean: 0, StdDev: 0.05}, FeatureStats{Mean: 1, StdDev: 1}),
		statsOf("wide", FeatureStats{Mean: 2, StdDev: 1}, FeatureStats{Mean: 3, StdDev: 1}),
	}
	ref := []float64{0.01, 1.2}

	sm := smooth(stats, ref, 0.1, 1.1)
	assert.Equal(t, PathFullScan, sm.path)

	sharp := sm.stats[0]
	assert.InDelta(t, 0.055, sharp.Features[0].StdDev, 1e-12)
	assert.Equal(t, 1.0, sharp.Features[1].StdDev)
	assert.True(t, sm.smoothed[0])
	require.True(t, sm.after[0].Recorded)
	want := (GaussianDensity(ref[0], 0, 0.05*1.1) + GaussianDensity(ref[1], 1, 1)) / 2
	assert.InDelta(t, want, sm.after[0].Value, 1e-9)

	// the first-feature path does not run, so "wide" keeps its estimates
	assert.Equal(t, stats[1].Features, sm.stats[1].Features)
	assert.False(t, sm.smoothed[1])
	assert.False(t, sm.after[1].Recorded)

	assert.Equal(t, 0.05, stats[0].Features[0].StdDev)
}

func TestSmoothThresholdIsStrict(t *testing.T) {
	stats := []ClassStats{statsOf("edge", FeatureStats{Mean: 0, StdDev: 0.25})}

	sm := smooth(stats, []float64{0}, 0.25, 2)
	assert.Equal(t, PathFirstFeature, sm.path)
	assert.Equal(t, 0.5, sm.stats[0].Features[0].StdDev)
}

func TestEstimateParameters(t *testing.T) {
	X := mat.NewDense(5, 2, []float64{
		2, 10,
		1, 0,
		4, 20,
		3, 0,
		6, 30,
	})
	y := []string{"even", "odd", "even", "odd", "even"}

	est := estimateParameters(X, y, 1e-4)
	require.Len(t, est.stats, 2)

	even, odd := est.stats[0], est.stats[1]
	assert.Equal(t, "even", even.Label)
	assert.Equal(t, 3, even.Count)
	assert.InDelta(t, 0.6, even.Prior, 1e-12)
	assert.InDelta(t, 4.0, even.Features[0].Mean, 1e-12)
	// population standard deviation
	assert.InDelta(t, 1.632993161855452, even.Features[0].StdDev, 1e-12)
	assert.InDelta(t, 20.0, even.Features[1].Mean, 1e-12)

	assert.Equal(t, "odd", odd.Label)
	assert.InDelta(t, 1.0, odd.Features[0].StdDev, 1e-12)
	assert.Equal(t, 1e-4, odd.Features[1].StdDev)
	assert.Equal(t, [][2]int{{1, 1}}, est.degenerate)

	// "before" is the first value of feature 0 under the estimate
	assert.InDelta(t, GaussianDensity(2, 4, even.Features[0].StdDev), est.before[0], 1e-15)
	assert.InDelta(t, GaussianDensity(1, 2, 1), est.before[1], 1e-15)
}

func TestSmoothingPathString(t *testing.T) {
	assert.Equal(t, "full-scan", PathFullScan.String())
	assert.Equal(t, "first-feature", PathFirstFeature.String())
	assert.Equal(t, "none", SmoothingPath(0).String())
}
