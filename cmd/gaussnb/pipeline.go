package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gaussnb/config"
	"github.com/YuminosukeSato/gaussnb/dataset"
	"github.com/YuminosukeSato/gaussnb/metrics"
	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/YuminosukeSato/gaussnb/pkg/log"
	"github.com/YuminosukeSato/gaussnb/report"
	"github.com/YuminosukeSato/gaussnb/sklearn/naive_bayes"
)

// loadConfig reads --config and applies the flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"train", &cfg.Data.Train},
		{"test", &cfg.Data.Test},
		{"log-level", &cfg.Log.Level},
		{"log-format", &cfg.Log.Format},
		{"plot", &cfg.Report.PlotPath},
	}
	for _, o := range overrides {
		if !flags.Changed(o.flag) {
			continue
		}
		v, err := flags.GetString(o.flag)
		if err != nil {
			return config.Config{}, err
		}
		*o.dst = v
	}
	if flags.Changed("plot-feature") {
		if cfg.Report.PlotFeature, err = flags.GetInt("plot-feature"); err != nil {
			return config.Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setupLogging installs the process logger and routes library warnings to it.
func setupLogging(cfg config.Log, w *os.File) (log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.Format == "json" {
		log.SetupLogger(w, level)
		logger := log.GetLogger()
		errors.SetWarningHandler(func(warning error) {
			logger.Warn(warning.Error())
		})
		return logger, nil
	}

	logger := log.NewConsoleLogger(w, level, !isTerminal(w))
	log.SetLogger(logger)
	errors.SetZerologWarnFunc(log.WarnFuncFor(logger))
	return logger, nil
}

// pipeline is the batch part shared by run and eval: load both files, fit,
// evaluate, write the report and the optional plot.
type pipeline struct {
	cfg    config.Config
	logger log.Logger
	out    io.Writer
}

func (p *pipeline) execute() (*naive_bayes.Model, *metrics.Evaluation, error) {
	train, err := dataset.LoadFile(p.cfg.Data.Train, "training")
	if err != nil {
		return nil, nil, err
	}
	test, err := dataset.LoadFile(p.cfg.Data.Test, "test")
	if err != nil {
		return nil, nil, err
	}
	p.logger.Info("Datasets loaded",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, p.cfg.Data.Train,
		log.SamplesKey, train.Len(),
		log.FeaturesKey, train.NumFeatures(),
	)

	nb := naive_bayes.NewGaussianNB(append(p.cfg.Options(), naive_bayes.WithLogger(p.logger))...)
	if err := nb.FitDataset(train); err != nil {
		return nil, nil, err
	}
	m, err := nb.Model()
	if err != nil {
		return nil, nil, err
	}

	eval, err := nb.Evaluate(test)
	if err != nil {
		return nil, nil, err
	}
	if err := report.Write(p.out, m, eval); err != nil {
		return nil, nil, err
	}

	if path := p.cfg.Report.PlotPath; path != "" {
		if err := report.SaveDensityPlot(m, p.cfg.Report.PlotFeature, path); err != nil {
			return nil, nil, err
		}
		p.logger.Info("Density plot written", log.SourceKey, path)
	}
	return m, eval, nil
}

func newPipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := setupLogging(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	return &pipeline{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}, nil
}
