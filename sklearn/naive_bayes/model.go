package naive_bayes

import (
	"math"

	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Model is an immutable fitted Gaussian Naive Bayes snapshot. It is safe for
// concurrent use. Every accessor returns copies.
type Model struct {
	classes      []string
	index        map[string]int
	stats        []ClassStats
	estimated    []ClassStats
	before       []float64
	after        []Probability
	smoothed     []bool
	path         SmoothingPath
	nFeatures    int
	nSamples     int
	densityFloor float64
}

func newModel(est estimate, sm smoothing, nFeatures, nSamples int, densityFloor float64) *Model {
	m := &Model{
		classes:      make([]string, len(sm.stats)),
		index:        make(map[string]int, len(sm.stats)),
		stats:        sm.stats,
		estimated:    cloneStats(est.stats),
		before:       append([]float64(nil), est.before...),
		after:        sm.after,
		smoothed:     sm.smoothed,
		path:         sm.path,
		nFeatures:    nFeatures,
		nSamples:     nSamples,
		densityFloor: densityFloor,
	}
	for i, s := range sm.stats {
		m.classes[i] = s.Label
		m.index[s.Label] = i
	}
	return m
}

// Classes returns the class labels in first-seen training order. This order
// breaks classification ties and orders confusion matrix rows and columns.
func (m *Model) Classes() []string {
	return append([]string(nil), m.classes...)
}

// NumFeatures returns the feature count the model was fitted on.
func (m *Model) NumFeatures() int { return m.nFeatures }

// NumSamples returns the number of training samples.
func (m *Model) NumSamples() int { return m.nSamples }

// Stats returns the smoothed parameters used for classification.
func (m *Model) Stats(label string) (ClassStats, bool) {
	i, ok := m.index[label]
	if !ok {
		return ClassStats{}, false
	}
	return m.stats[i].clone(), true
}

// EstimatedStats returns the parameters as estimated, before smoothing.
func (m *Model) EstimatedStats(label string) (ClassStats, bool) {
	i, ok := m.index[label]
	if !ok {
		return ClassStats{}, false
	}
	return m.estimated[i].clone(), true
}

// Prior returns the prior probability of label.
func (m *Model) Prior(label string) (float64, bool) {
	i, ok := m.index[label]
	if !ok {
		return 0, false
	}
	return m.stats[i].Prior, true
}

// BeforeSmoothing returns the representative probability of label before
// smoothing.
func (m *Model) BeforeSmoothing(label string) (float64, bool) {
	i, ok := m.index[label]
	if !ok {
		return 0, false
	}
	return m.before[i], true
}

// AfterSmoothing returns the representative probability of label after
// smoothing. Recorded is false for classes the full-scan path did not smooth.
func (m *Model) AfterSmoothing(label string) Probability {
	i, ok := m.index[label]
	if !ok {
		return Probability{}
	}
	return m.after[i]
}

// Smoothed reports whether any feature of label was inflated by the
// full-scan path.
func (m *Model) Smoothed(label string) bool {
	i, ok := m.index[label]
	return ok && m.smoothed[i]
}

// SmoothingPath returns which smoothing path produced the model.
func (m *Model) SmoothingPath() SmoothingPath { return m.path }

// LogScores returns ln(prior) + Σ ln(max(density, floor)) for every class in
// Classes() order.
func (m *Model) LogScores(sample []float64) ([]float64, error) {
	if len(sample) != m.nFeatures {
		return nil, errors.NewDimensionError("GaussianNB.Classify", m.nFeatures, len(sample), 1)
	}
	for f, x := range sample {
		if err := errors.CheckFinite("GaussianNB.Classify", x); err != nil {
			return nil, errors.Wrapf(err, "feature %d", f)
		}
	}

	scores := make([]float64, len(m.stats))
	for c, cs := range m.stats {
		score := math.Log(cs.Prior)
		for f, fs := range cs.Features {
			score += errors.FlooredLog(GaussianDensity(sample[f], fs.Mean, fs.StdDev), m.densityFloor)
		}
		scores[c] = score
	}
	return scores, nil
}

// Classify returns the class with the strictly greatest log score. Ties go
// to the class that comes first in Classes().
func (m *Model) Classify(sample []float64) (string, error) {
	scores, err := m.LogScores(sample)
	if err != nil {
		return "", err
	}
	return m.classes[floats.MaxIdx(scores)], nil
}

// Posterior returns the normalized class probabilities of sample in
// Classes() order.
func (m *Model) Posterior(sample []float64) ([]float64, error) {
	scores, err := m.LogScores(sample)
	if err != nil {
		return nil, err
	}
	norm := floats.LogSumExp(scores)
	for i := range scores {
		scores[i] = math.Exp(scores[i] - norm)
	}
	return scores, nil
}
