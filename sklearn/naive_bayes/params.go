package naive_bayes

// FeatureStats holds the Gaussian likelihood parameters of one feature.
type FeatureStats struct {
	Mean   float64
	StdDev float64
}

// ClassStats holds the prior and per-feature likelihood parameters of one class.
// Features is aligned with the sample feature order.
type ClassStats struct {
	Label    string
	Count    int
	Prior    float64
	Features []FeatureStats
}

func (c ClassStats) clone() ClassStats {
	c.Features = append([]FeatureStats(nil), c.Features...)
	return c
}

func cloneStats(stats []ClassStats) []ClassStats {
	out := make([]ClassStats, len(stats))
	for i, s := range stats {
		out[i] = s.clone()
	}
	return out
}

// SmoothingPath tells which variance smoothing policy produced the "after"
// probabilities of a fit.
type SmoothingPath int

const (
	// PathFullScan means at least one feature of some class was below the
	// threshold and every such feature was inflated.
	PathFullScan SmoothingPath = iota + 1
	// PathFirstFeature means no feature was below the threshold, so only the
	// first feature of every class was inflated.
	PathFirstFeature
)

func (p SmoothingPath) String() string {
	switch p {
	case PathFullScan:
		return "full-scan"
	case PathFirstFeature:
		return "first-feature"
	default:
		return "none"
	}
}

// Probability is a representative likelihood recorded for reporting.
// Recorded is false when the smoothing policy left no value for the class.
type Probability struct {
	Value    float64
	Recorded bool
}
