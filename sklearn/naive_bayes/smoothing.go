package naive_bayes

// smoothing is the output of the variance smoothing pass.
type smoothing struct {
	stats    []ClassStats
	after    []Probability
	smoothed []bool
	path     SmoothingPath
}

// smooth corrects overly sharp standard deviations on a copy of stats.
//
// Every feature with stdDev < threshold is multiplied by factor. For each
// class the mean density of ref over all features is recorded as its "after"
// probability when that class was smoothed. If no feature of any class is
// below the threshold, only feature 0 of every class is inflated and "after"
// is the density of ref[0] alone. Exactly one of the two paths runs.
func smooth(stats []ClassStats, ref []float64, threshold, factor float64) smoothing {
	out := smoothing{
		stats:    cloneStats(stats),
		after:    make([]Probability, len(stats)),
		smoothed: make([]bool, len(stats)),
	}

	fullScan := make([]float64, len(stats))
	triggered := false
	for c := range out.stats {
		features := out.stats[c].Features
		total := 0.0
		for f := range features {
			if features[f].StdDev < threshold {
				features[f].StdDev *= factor
				out.smoothed[c] = true
				triggered = true
			}
			total += GaussianDensity(ref[f], features[f].Mean, features[f].StdDev)
		}
		fullScan[c] = total / float64(len(features))
	}

	if triggered {
		out.path = PathFullScan
		for c := range out.stats {
			if out.smoothed[c] {
				out.after[c] = Probability{Value: fullScan[c], Recorded: true}
			}
		}
		return out
	}

	out.path = PathFirstFeature
	for c := range out.stats {
		first := &out.stats[c].Features[0]
		first.StdDev *= factor
		out.after[c] = Probability{Value: GaussianDensity(ref[0], first.Mean, first.StdDev), Recorded: true}
	}
	return out
}
