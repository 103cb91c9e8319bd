// Package log defines standard attribute keys for classifier operations.
//
// Keys follow a hierarchical naming convention ("model.name",
// "data.samples") so that log records from fitting, smoothing and evaluation
// can be filtered together.

package log

import "github.com/YuminosukeSato/gaussnb/pkg/errors"

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator type, e.g. "GaussianNB".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	ClassesKey  = "data.classes"
	SourceKey   = "data.source"
)

// Model parameters and results
const (
	// ClassKey names a single class label.
	ClassKey = "model.class"

	// PriorKey records a class prior probability.
	PriorKey = "model.prior"

	// SmoothingPathKey records which variance smoothing path ran.
	SmoothingPathKey = "smoothing.path"

	// SmoothedClassesKey records how many classes had a feature inflated.
	SmoothedClassesKey = "smoothing.classes"

	// AccuracyKey records accuracy in percent.
	AccuracyKey = "metrics.accuracy"

	// CorrectKey records the number of correctly classified samples.
	CorrectKey = "metrics.correct"

	// PredictedKey records a predicted label.
	PredictedKey = "preds.label"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error Context
const (
	ErrorCodeKey = "error.code"
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationFit      = "fit"
	OperationSmooth   = "smooth"
	OperationClassify = "classify"
	OperationPredict  = "predict"
	OperationEvaluate = "evaluate"
	OperationLoad     = "load"

	PhaseTraining  = "training"
	PhaseTesting   = "testing"
	PhaseInference = "inference"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorUnknownLabel      = "UNKNOWN_LABEL"
)

// ErrorFields returns ErrorCodeKey and ErrorTypeKey pairs describing err,
// ready to be passed as log fields.
func ErrorFields(err error) []any {
	var (
		nf *errors.NotFittedError
		de *errors.DimensionError
		fe *errors.InputFormatError
		ve *errors.ValueError
		ul *errors.UnknownLabelError
		va *errors.ValidationError
	)
	var code, typ string
	switch {
	case errors.As(err, &nf):
		code, typ = ErrorNotFitted, "NotFittedError"
	case errors.As(err, &de):
		code, typ = ErrorDimensionMismatch, "DimensionError"
	case errors.As(err, &fe):
		code, typ = ErrorInvalidInput, "InputFormatError"
	case errors.As(err, &ve):
		code, typ = ErrorInvalidInput, "ValueError"
	case errors.As(err, &va):
		code, typ = ErrorInvalidInput, "ValidationError"
	case errors.As(err, &ul):
		code, typ = ErrorUnknownLabel, "UnknownLabelError"
	case errors.Is(err, errors.ErrEmptyData):
		code, typ = ErrorEmptyData, "EmptyData"
	default:
		return nil
	}
	return []any{ErrorCodeKey, code, ErrorTypeKey, typ}
}
