// Command gaussnb trains a Gaussian Naive Bayes classifier on a labeled
// training file, evaluates it on a test file and classifies vectors typed on
// standard input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/YuminosukeSato/gaussnb/pkg/log"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "gaussnb",
	Short:         "Gaussian Naive Bayes classifier for labeled numeric vectors",
	Long:          `gaussnb fits per-class Gaussian likelihoods with variance smoothing, reports accuracy and a confusion matrix, and classifies new vectors interactively`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(evalCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().String("train", "", "training file (overrides [data].train)")
	rootCmd.PersistentFlags().String("test", "", "test file (overrides [data].test)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (console|json)")
	rootCmd.PersistentFlags().String("plot", "", "write a density plot of one feature to this file")
	rootCmd.PersistentFlags().Int("plot-feature", -1, "feature index for --plot (overrides [report].plot_feature)")
}

func main() {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		log.GetLogger().Debug("Command failed", append([]any{err}, log.ErrorFields(err)...)...)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
