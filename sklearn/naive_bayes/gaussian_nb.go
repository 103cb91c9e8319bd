package naive_bayes

import (
	"time"

	"github.com/YuminosukeSato/gaussnb/core/model"
	"github.com/YuminosukeSato/gaussnb/core/parallel"
	"github.com/YuminosukeSato/gaussnb/dataset"
	"github.com/YuminosukeSato/gaussnb/metrics"
	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/YuminosukeSato/gaussnb/pkg/log"
	"gonum.org/v1/gonum/mat"
)

const modelName = "GaussianNB"

// GaussianNB implements a Gaussian Naive Bayes classifier with variance
// smoothing. Fit estimates class priors and per-feature (mean, stdDev),
// smooths a copy of the estimates and freezes the result into a Model.
type GaussianNB struct {
	state *model.StateManager

	// Hyperparameters
	varianceThreshold float64
	smoothingFactor   float64
	stdDevFloor       float64
	densityFloor      float64
	workers           int

	logger log.Logger
	model  *Model
}

var (
	_ model.Classifier      = (*GaussianNB)(nil)
	_ model.ParameterGetter = (*GaussianNB)(nil)
)

// NewGaussianNB creates a new GaussianNB classifier
func NewGaussianNB(opts ...Option) *GaussianNB {
	nb := &GaussianNB{
		state:             model.NewStateManager(),
		varianceThreshold: DefaultVarianceThreshold,
		smoothingFactor:   DefaultSmoothingFactor,
		stdDevFloor:       DefaultStdDevFloor,
		densityFloor:      DefaultDensityFloor,
	}
	for _, opt := range opts {
		opt(nb)
	}
	return nb
}

func (nb *GaussianNB) log() log.Logger {
	l := nb.logger
	if l == nil {
		l = log.GetLogger()
	}
	return l.With(log.ModelNameKey, modelName)
}

// Fit trains the classifier on X (n_samples × n_features) and labels y.
// The first row of X is the reference sample of the smoothing pass. On error
// the previously fitted model, if any, is kept.
func (nb *GaussianNB) Fit(X mat.Matrix, y []string) error {
	start := time.Now()
	if err := nb.validateParams(); err != nil {
		return err
	}
	if err := validateTrainingInput("GaussianNB.Fit", X, y); err != nil {
		return err
	}
	nSamples, nFeatures := X.Dims()
	logger := nb.log()

	est := estimateParameters(X, y, nb.stdDevFloor)
	for _, d := range est.degenerate {
		errors.Warn(errors.NewDegenerateVarianceWarning(est.stats[d[0]].Label, d[1], nb.stdDevFloor))
	}
	for _, cs := range est.stats {
		logger.Debug("Class parameters estimated",
			log.ClassKey, cs.Label,
			log.PriorKey, cs.Prior,
			log.SamplesKey, cs.Count,
		)
	}

	ref := mat.Row(nil, 0, X)
	sm := smooth(est.stats, ref, nb.varianceThreshold, nb.smoothingFactor)

	smoothedClasses := 0
	for _, s := range sm.smoothed {
		if s {
			smoothedClasses++
		}
	}
	logger.Debug("Variance smoothing applied",
		log.OperationKey, log.OperationSmooth,
		log.SmoothingPathKey, sm.path.String(),
		log.SmoothedClassesKey, smoothedClasses,
	)

	nb.model = newModel(est, sm, nFeatures, nSamples, nb.densityFloor)
	nb.state.SetFitted(nFeatures, nSamples)

	logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.ClassesKey, len(est.stats),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// FitDataset trains the classifier on a parsed training set.
func (nb *GaussianNB) FitDataset(train *dataset.Dataset) error {
	X, y, err := train.Matrix()
	if err != nil {
		return errors.Wrap(err, "GaussianNB.FitDataset")
	}
	return nb.Fit(X, y)
}

// Model returns the fitted model snapshot.
func (nb *GaussianNB) Model() (*Model, error) {
	if err := nb.state.RequireFitted(modelName, "Model"); err != nil {
		return nil, err
	}
	return nb.model, nil
}

// Classes returns the labels seen during fitting in first-seen order, or nil
// before Fit.
func (nb *GaussianNB) Classes() []string {
	if !nb.state.IsFitted() {
		return nil
	}
	return nb.model.Classes()
}

// Classify predicts the label of one feature vector.
func (nb *GaussianNB) Classify(sample []float64) (string, error) {
	if err := nb.state.RequireFitted(modelName, "Classify"); err != nil {
		return "", err
	}
	return nb.model.Classify(sample)
}

// Predict classifies every row of X. Rows are split across goroutines when X
// is large; the model is read-only so rows are independent.
func (nb *GaussianNB) Predict(X mat.Matrix) ([]string, error) {
	if err := nb.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}
	rows, cols := X.Dims()
	if err := nb.state.RequireFeatures("GaussianNB.Predict", cols); err != nil {
		return nil, err
	}

	preds := make([]string, rows)
	errs := make([]error, rows)
	parallel.ParallelizeWithThreshold(rows, defaultParallelThreshold, nb.workers, func(start, end int) {
		row := make([]float64, cols)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			preds[i], errs[i] = nb.model.Classify(row)
		}
	})
	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
	}

	nb.log().Debug("Prediction completed", log.OperationKey, log.OperationPredict, log.SamplesKey, rows)
	return preds, nil
}

// Score returns the fraction of rows of X whose prediction equals y.
func (nb *GaussianNB) Score(X mat.Matrix, y []string) (float64, error) {
	preds, err := nb.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, preds)
}

// Evaluate classifies every sample of test and builds the confusion matrix
// over the training classes. A test label never seen during training is an
// UnknownLabelError.
func (nb *GaussianNB) Evaluate(test *dataset.Dataset) (*metrics.Evaluation, error) {
	if err := nb.state.RequireFitted(modelName, "Evaluate"); err != nil {
		return nil, err
	}
	if test.Len() == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "GaussianNB.Evaluate: dataset %q", test.Name())
	}
	if err := nb.state.RequireFeatures("GaussianNB.Evaluate", test.NumFeatures()); err != nil {
		return nil, err
	}

	cm, err := metrics.NewConfusionMatrix(nb.model.Classes())
	if err != nil {
		return nil, err
	}

	correct := 0
	for i := 0; i < test.Len(); i++ {
		s := test.At(i)
		predicted, err := nb.model.Classify(s.Features())
		if err != nil {
			return nil, errors.Wrapf(err, "test sample %d", i+1)
		}
		if err := cm.Add(s.Label(), predicted); err != nil {
			return nil, errors.Wrapf(err, "test sample %d", i+1)
		}
		if predicted == s.Label() {
			correct++
		}
	}

	ev := &metrics.Evaluation{
		Accuracy: float64(correct) / float64(test.Len()) * 100,
		Correct:  correct,
		Total:    test.Len(),
		Matrix:   cm,
	}
	nb.log().Info("Evaluation completed",
		log.OperationKey, log.OperationEvaluate,
		log.PhaseKey, log.PhaseTesting,
		log.SamplesKey, ev.Total,
		log.CorrectKey, ev.Correct,
		log.AccuracyKey, ev.Accuracy,
	)
	return ev, nil
}

// GetParams returns the hyperparameters of the classifier.
func (nb *GaussianNB) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"var_threshold":    nb.varianceThreshold,
		"smoothing_factor": nb.smoothingFactor,
		"std_dev_floor":    nb.stdDevFloor,
		"density_floor":    nb.densityFloor,
		"workers":          nb.workers,
	}
}
