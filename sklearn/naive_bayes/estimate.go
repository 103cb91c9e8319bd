package naive_bayes

import (
	"math"

	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianDensity returns the normal probability density of x for the given
// mean and standard deviation.
func GaussianDensity(x, mean, stdDev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stdDev}.Prob(x)
}

// estimate is the output of parameter estimation before smoothing.
type estimate struct {
	stats []ClassStats
	// before holds, per class, the density of the class's first training
	// value of feature 0 under the estimated parameters of feature 0.
	before []float64
	// degenerate lists (class, feature) pairs whose stdDev was floored.
	degenerate [][2]int
}

// estimateParameters computes priors and per-feature population mean and
// standard deviation for every class. Classes appear in first-seen order of
// y. The standard deviation of a subset whose values are all equal is
// replaced by floor.
func estimateParameters(X mat.Matrix, y []string, floor float64) estimate {
	nSamples, nFeatures := X.Dims()

	var labels []string
	rowsByClass := make(map[string][]int)
	for i, label := range y {
		if _, seen := rowsByClass[label]; !seen {
			labels = append(labels, label)
		}
		rowsByClass[label] = append(rowsByClass[label], i)
	}

	est := estimate{
		stats:  make([]ClassStats, len(labels)),
		before: make([]float64, len(labels)),
	}
	values := make([]float64, 0, nSamples)
	for c, label := range labels {
		rows := rowsByClass[label]
		cs := ClassStats{
			Label:    label,
			Count:    len(rows),
			Prior:    float64(len(rows)) / float64(nSamples),
			Features: make([]FeatureStats, nFeatures),
		}
		for f := 0; f < nFeatures; f++ {
			values = values[:0]
			for _, i := range rows {
				values = append(values, X.At(i, f))
			}
			mean := stat.Mean(values, nil)
			stdDev := math.Sqrt(stat.MomentAbout(2, values, mean, nil))
			// identical values leave rounding residue in the moment
			if floats.Min(values) == floats.Max(values) {
				stdDev = floor
				est.degenerate = append(est.degenerate, [2]int{c, f})
			}
			cs.Features[f] = FeatureStats{Mean: mean, StdDev: stdDev}

			if f == 0 {
				est.before[c] = GaussianDensity(values[0], mean, stdDev)
			}
		}
		est.stats[c] = cs
	}
	return est
}

// validateTrainingInput checks shapes and values of a training set.
func validateTrainingInput(op string, X mat.Matrix, y []string) error {
	if X == nil {
		return errors.Wrapf(errors.ErrEmptyData, "%s: nil matrix", op)
	}
	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.Wrapf(errors.ErrEmptyData, "%s: %d samples with %d features", op, nSamples, nFeatures)
	}
	if len(y) != nSamples {
		return errors.NewDimensionError(op, nSamples, len(y), 0)
	}
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			if err := errors.CheckFinite(op, X.At(i, j)); err != nil {
				return errors.Wrapf(err, "sample %d feature %d", i, j)
			}
		}
	}
	return nil
}
