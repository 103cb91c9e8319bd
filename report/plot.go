package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/YuminosukeSato/gaussnb/sklearn/naive_bayes"
)

// number of points sampled per density curve
const plotResolution = 200

// DensityCurves samples the fitted density of feature for every class over
// a common range of ±4 standard deviations around the class means. The
// result alternates label and plotter.XYs, ready for plotutil.AddLines.
func DensityCurves(m *naive_bayes.Model, feature int) ([]interface{}, error) {
	if feature < 0 || feature >= m.NumFeatures() {
		return nil, errors.NewValueError("report.DensityCurves",
			fmt.Sprintf("feature %d out of range [0, %d)", feature, m.NumFeatures()))
	}

	classes := m.Classes()
	params := make([]naive_bayes.FeatureStats, len(classes))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, c := range classes {
		cs, _ := m.Stats(c)
		fs := cs.Features[feature]
		params[i] = fs
		lo = math.Min(lo, fs.Mean-4*fs.StdDev)
		hi = math.Max(hi, fs.Mean+4*fs.StdDev)
	}

	step := (hi - lo) / float64(plotResolution-1)
	lines := make([]interface{}, 0, 2*len(classes))
	for i, c := range classes {
		pts := make(plotter.XYs, plotResolution)
		for j := range pts {
			x := lo + float64(j)*step
			pts[j].X = x
			pts[j].Y = naive_bayes.GaussianDensity(x, params[i].Mean, params[i].StdDev)
		}
		lines = append(lines, c, pts)
	}
	return lines, nil
}

// SaveDensityPlot writes a plot of DensityCurves to path. The image format
// follows the file extension (png, svg, pdf).
func SaveDensityPlot(m *naive_bayes.Model, feature int, path string) error {
	lines, err := DensityCurves(m, feature)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Class densities of feature %d", feature)
	p.X.Label.Text = fmt.Sprintf("x%d", feature)
	p.Y.Label.Text = "density"
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLines(p, lines...); err != nil {
		return errors.Wrap(err, "report: add density lines")
	}
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "report: save plot %s", path)
	}
	return nil
}
