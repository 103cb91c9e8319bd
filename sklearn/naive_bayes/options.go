package naive_bayes

import (
	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/YuminosukeSato/gaussnb/pkg/log"
)

// Default hyperparameters.
const (
	DefaultVarianceThreshold = 0.1
	DefaultSmoothingFactor   = 1.1
	DefaultStdDevFloor       = 1e-4
	DefaultDensityFloor      = 1e-10

	// sequential prediction below this many rows
	defaultParallelThreshold = 256
)

// Option is a functional option for GaussianNB
type Option func(*GaussianNB)

// WithVarianceThreshold sets the standard deviation below which a feature is
// considered too sharp and gets inflated.
func WithVarianceThreshold(threshold float64) Option {
	return func(nb *GaussianNB) {
		nb.varianceThreshold = threshold
	}
}

// WithSmoothingFactor sets the multiplicative inflation applied to a
// smoothed standard deviation.
func WithSmoothingFactor(factor float64) Option {
	return func(nb *GaussianNB) {
		nb.smoothingFactor = factor
	}
}

// WithStdDevFloor sets the value substituted for a zero standard deviation.
func WithStdDevFloor(floor float64) Option {
	return func(nb *GaussianNB) {
		nb.stdDevFloor = floor
	}
}

// WithDensityFloor sets the lower bound applied to each per-feature density
// before taking its logarithm.
func WithDensityFloor(floor float64) Option {
	return func(nb *GaussianNB) {
		nb.densityFloor = floor
	}
}

// WithWorkers sets the number of goroutines used by Predict. 0 uses all CPUs.
func WithWorkers(n int) Option {
	return func(nb *GaussianNB) {
		nb.workers = n
	}
}

// WithLogger sets the logger. By default the package default logger is used.
func WithLogger(logger log.Logger) Option {
	return func(nb *GaussianNB) {
		nb.logger = logger
	}
}

func (nb *GaussianNB) validateParams() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"var_threshold", nb.varianceThreshold},
		{"smoothing_factor", nb.smoothingFactor},
		{"std_dev_floor", nb.stdDevFloor},
		{"density_floor", nb.densityFloor},
	}
	for _, c := range checks {
		if !(c.value > 0) {
			return errors.NewValidationError(c.name, "must be positive", c.value)
		}
	}
	if nb.workers < 0 {
		return errors.NewValidationError("workers", "must not be negative", nb.workers)
	}
	return nil
}
