package metrics

import (
	"github.com/YuminosukeSato/gaussnb/pkg/errors"
)

// Accuracy は予測ラベルが正解ラベルと一致した割合（0〜1）を計算する
func Accuracy(yTrue, yPred []string) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty labels")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred), 0)
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ConfusionMatrix counts (actual, predicted) label pairs over a fixed label set.
// Rows are actual labels and columns are predicted labels, both in the order
// given to NewConfusionMatrix.
type ConfusionMatrix struct {
	labels []string
	index  map[string]int
	counts [][]int
	total  int
}

// NewConfusionMatrix creates a zeroed square matrix over labels.
func NewConfusionMatrix(labels []string) (*ConfusionMatrix, error) {
	if len(labels) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "confusion matrix needs at least one label")
	}
	cm := &ConfusionMatrix{
		labels: append([]string(nil), labels...),
		index:  make(map[string]int, len(labels)),
		counts: make([][]int, len(labels)),
	}
	for i, l := range labels {
		if _, dup := cm.index[l]; dup {
			return nil, errors.NewValidationError("labels", "duplicate label", l)
		}
		cm.index[l] = i
		cm.counts[i] = make([]int, len(labels))
	}
	return cm, nil
}

// Add records one observation. Labels outside the matrix are an
// UnknownLabelError and leave the matrix unchanged.
func (cm *ConfusionMatrix) Add(actual, predicted string) error {
	row, ok := cm.index[actual]
	if !ok {
		return errors.NewUnknownLabelError("ConfusionMatrix.Add", actual)
	}
	col, ok := cm.index[predicted]
	if !ok {
		return errors.NewUnknownLabelError("ConfusionMatrix.Add", predicted)
	}
	cm.counts[row][col]++
	cm.total++
	return nil
}

// Labels returns the row/column labels in order.
func (cm *ConfusionMatrix) Labels() []string {
	return append([]string(nil), cm.labels...)
}

// Count returns the number of samples of class actual predicted as predicted.
// Unknown labels count as zero.
func (cm *ConfusionMatrix) Count(actual, predicted string) int {
	row, ok := cm.index[actual]
	if !ok {
		return 0
	}
	col, ok := cm.index[predicted]
	if !ok {
		return 0
	}
	return cm.counts[row][col]
}

// Rows returns a copy of the count table.
func (cm *ConfusionMatrix) Rows() [][]int {
	out := make([][]int, len(cm.counts))
	for i, row := range cm.counts {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// RowSum returns the number of samples whose actual label is actual.
func (cm *ConfusionMatrix) RowSum(actual string) int {
	row, ok := cm.index[actual]
	if !ok {
		return 0
	}
	sum := 0
	for _, c := range cm.counts[row] {
		sum += c
	}
	return sum
}

// Trace returns the number of correctly classified samples.
func (cm *ConfusionMatrix) Trace() int {
	trace := 0
	for i := range cm.counts {
		trace += cm.counts[i][i]
	}
	return trace
}

// Total returns the number of recorded observations.
func (cm *ConfusionMatrix) Total() int {
	return cm.total
}

// Accuracy returns Trace()/Total()*100, or 0 for an empty matrix.
func (cm *ConfusionMatrix) Accuracy() float64 {
	if cm.total == 0 {
		return 0
	}
	return float64(cm.Trace()) / float64(cm.total) * 100
}

// Recall returns the fraction of samples of class label that were predicted
// as label. ok is false when no sample of that class was recorded.
func (cm *ConfusionMatrix) Recall(label string) (recall float64, ok bool) {
	rowSum := cm.RowSum(label)
	if rowSum == 0 {
		return 0, false
	}
	return float64(cm.Count(label, label)) / float64(rowSum), true
}

// Precision returns the fraction of predictions of label that were correct.
// ok is false when label was never predicted.
func (cm *ConfusionMatrix) Precision(label string) (precision float64, ok bool) {
	col, known := cm.index[label]
	if !known {
		return 0, false
	}
	colSum := 0
	for i := range cm.counts {
		colSum += cm.counts[i][col]
	}
	if colSum == 0 {
		return 0, false
	}
	return float64(cm.counts[col][col]) / float64(colSum), true
}

// Evaluation is the result of running a classifier over a labeled set.
type Evaluation struct {
	// Accuracy is the percentage of correct predictions.
	Accuracy float64
	Correct  int
	Total    int
	Matrix   *ConfusionMatrix
}
