// Package config loads gaussnb run settings from a TOML file.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/YuminosukeSato/gaussnb/pkg/log"
	"github.com/YuminosukeSato/gaussnb/sklearn/naive_bayes"
)

// Config is the root of a gaussnb TOML file.
//
//	[data]
//	train = "train.txt"
//	test  = "test.txt"
//
//	[smoothing]
//	threshold = 0.1
//	factor    = 1.1
type Config struct {
	Data      Data      `toml:"data"`
	Smoothing Smoothing `toml:"smoothing"`
	Model     Model     `toml:"model"`
	Log       Log       `toml:"log"`
	Report    Report    `toml:"report"`
}

// Data names the training and test files.
type Data struct {
	Train string `toml:"train"`
	Test  string `toml:"test"`
}

// Smoothing holds the variance smoothing parameters.
type Smoothing struct {
	Threshold float64 `toml:"threshold"`
	Factor    float64 `toml:"factor"`
}

// Model holds numerical floors of estimation and classification.
type Model struct {
	StdDevFloor  float64 `toml:"std_dev_floor"`
	DensityFloor float64 `toml:"density_floor"`
	Workers      int     `toml:"workers"`
}

// Log selects the log level and output format ("json" or "console").
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Report configures the optional density plot. An empty PlotPath disables it.
type Report struct {
	PlotPath    string `toml:"plot_path"`
	PlotFeature int    `toml:"plot_feature"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data: Data{
			Train: "train.txt",
			Test:  "test.txt",
		},
		Smoothing: Smoothing{
			Threshold: naive_bayes.DefaultVarianceThreshold,
			Factor:    naive_bayes.DefaultSmoothingFactor,
		},
		Model: Model{
			StdDevFloor:  naive_bayes.DefaultStdDevFloor,
			DensityFloor: naive_bayes.DefaultDensityFloor,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: %s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.NewValidationError("config", "unknown keys", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"smoothing.threshold", c.Smoothing.Threshold},
		{"smoothing.factor", c.Smoothing.Factor},
		{"model.std_dev_floor", c.Model.StdDevFloor},
		{"model.density_floor", c.Model.DensityFloor},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return errors.NewValidationError(p.name, "must be positive", p.value)
		}
	}
	if c.Model.Workers < 0 {
		return errors.NewValidationError("model.workers", "must not be negative", c.Model.Workers)
	}
	if c.Report.PlotFeature < 0 {
		return errors.NewValidationError("report.plot_feature", "must not be negative", c.Report.PlotFeature)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.NewValidationError("log.level", err.Error(), c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return errors.NewValidationError("log.format", "must be json or console", c.Log.Format)
	}
	return nil
}

// Options converts the model settings into GaussianNB options.
func (c Config) Options() []naive_bayes.Option {
	return []naive_bayes.Option{
		naive_bayes.WithVarianceThreshold(c.Smoothing.Threshold),
		naive_bayes.WithSmoothingFactor(c.Smoothing.Factor),
		naive_bayes.WithStdDevFloor(c.Model.StdDevFloor),
		naive_bayes.WithDensityFloor(c.Model.DensityFloor),
		naive_bayes.WithWorkers(c.Model.Workers),
	}
}
