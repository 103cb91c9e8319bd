// Package report renders a fitted model and its evaluation as text and plots.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/YuminosukeSato/gaussnb/metrics"
	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/YuminosukeSato/gaussnb/sklearn/naive_bayes"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Write prints priors, estimated and smoothed parameters, smoothing snapshots, accuracy and
// the confusion matrix. eval may be nil when no test set was evaluated.
func Write(w io.Writer, m *naive_bayes.Model, eval *metrics.Evaluation) error {
	if m == nil {
		return errors.NewNotFittedError("GaussianNB", "report.Write")
	}
	ew := &errWriter{w: w}
	classes := m.Classes()

	ew.printf("Training samples: %d, features: %d, classes: %d\n\n", m.NumSamples(), m.NumFeatures(), len(classes))

	ew.printf("Priors:\n")
	for _, c := range classes {
		p, _ := m.Prior(c)
		ew.printf("  %s: %.4f\n", c, p)
	}

	ew.printf("\nEstimated parameters:\n")
	writeParameters(ew, classes, m.EstimatedStats)
	ew.printf("\nSmoothed parameters:\n")
	writeParameters(ew, classes, m.Stats)

	ew.printf("\nVariance smoothing (%s):\n", m.SmoothingPath())
	for _, c := range classes {
		before, _ := m.BeforeSmoothing(c)
		ew.printf("  %s: before=%.6g after=%s\n", c, before, formatProbability(m.AfterSmoothing(c)))
	}

	if eval != nil {
		ew.printf("\nAccuracy: %.2f%% (%d/%d)\n\n", eval.Accuracy, eval.Correct, eval.Total)
		ew.printf("%s\n", ConfusionTable(eval.Matrix))
	}
	return ew.err
}

func writeParameters(ew *errWriter, classes []string, stats func(string) (naive_bayes.ClassStats, bool)) {
	for _, c := range classes {
		cs, _ := stats(c)
		for f, fs := range cs.Features {
			ew.printf("  %s feature %d: mean=%.6f stddev=%.6f\n", c, f, fs.Mean, fs.StdDev)
		}
	}
}

func formatProbability(p naive_bayes.Probability) string {
	if !p.Recorded {
		return "n/a"
	}
	return strconv.FormatFloat(p.Value, 'g', 6, 64)
}

// ConfusionTable renders cm with actual labels as rows and predicted labels
// as columns.
func ConfusionTable(cm *metrics.ConfusionMatrix) string {
	labels := cm.Labels()
	headers := append([]string{"actual \\ predicted"}, labels...)

	rows := make([][]string, 0, len(labels))
	for i, counts := range cm.Rows() {
		row := make([]string, 0, len(counts)+1)
		row = append(row, labels[i])
		for _, n := range counts {
			row = append(row, strconv.Itoa(n))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			// row 0 is the header
			if row == 0 || col == 0 {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}
