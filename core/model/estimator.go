package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
// X は n_samples × n_features、y は各行のクラスラベル
type Fitter interface {
	Fit(X mat.Matrix, y []string) error
}

// LabelPredictor は行列の各行に対してラベルを予測するモデルのインターフェース
type LabelPredictor interface {
	Predict(X mat.Matrix) ([]string, error)
}

// Scorer is the interface for models that report fractional accuracy.
type Scorer interface {
	Score(X mat.Matrix, y []string) (float64, error)
}

// Classifier combines the interfaces of a fitted label classifier.
type Classifier interface {
	Fitter
	LabelPredictor
	Scorer

	// Classify predicts the label of a single feature vector.
	Classify(sample []float64) (string, error)

	// Classes returns the labels seen during fitting in their deterministic order.
	Classes() []string
}

// ParameterGetter is the interface for models that expose their hyperparameters.
type ParameterGetter interface {
	GetParams() map[string]interface{}
}
