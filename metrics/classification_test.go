package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []string
		yPred   []string
		want    float64
		wantErr bool
	}{
		{
			name:  "all correct",
			yTrue: []string{"A", "B", "B"},
			yPred: []string{"A", "B", "B"},
			want:  1.0,
		},
		{
			name:  "half correct",
			yTrue: []string{"A", "B", "A", "B"},
			yPred: []string{"A", "A", "B", "B"},
			want:  0.5,
		},
		{
			name:    "length mismatch",
			yTrue:   []string{"A", "B"},
			yPred:   []string{"A"},
			wantErr: true,
		},
		{
			name:    "empty",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfusionMatrixCounts(t *testing.T) {
	cm, err := NewConfusionMatrix([]string{"setosa", "versicolor", "virginica"})
	require.NoError(t, err)

	pairs := [][2]string{
		{"setosa", "setosa"},
		{"setosa", "setosa"},
		{"versicolor", "virginica"},
		{"versicolor", "versicolor"},
		{"virginica", "virginica"},
		{"virginica", "versicolor"},
		{"virginica", "virginica"},
	}
	actualCounts := map[string]int{}
	for _, p := range pairs {
		require.NoError(t, cm.Add(p[0], p[1]))
		actualCounts[p[0]]++
	}

	assert.Equal(t, 2, cm.Count("setosa", "setosa"))
	assert.Equal(t, 1, cm.Count("versicolor", "virginica"))
	assert.Equal(t, 0, cm.Count("setosa", "virginica"))
	assert.Equal(t, len(pairs), cm.Total())

	for label, n := range actualCounts {
		assert.Equal(t, n, cm.RowSum(label), label)
	}

	assert.Equal(t, 5, cm.Trace())
	assert.Equal(t, float64(cm.Trace())/float64(cm.Total())*100, cm.Accuracy())

	assert.Equal(t, [][]int{{2, 0, 0}, {0, 1, 1}, {0, 1, 2}}, cm.Rows())
}

func TestConfusionMatrixUnknownLabel(t *testing.T) {
	cm, err := NewConfusionMatrix([]string{"A", "B"})
	require.NoError(t, err)

	err = cm.Add("C", "A")
	var labelErr *errors.UnknownLabelError
	require.True(t, errors.As(err, &labelErr))
	assert.Equal(t, "C", labelErr.Label)

	assert.Equal(t, 0, cm.Total(), "failed Add must not change the matrix")
	assert.Equal(t, []string{"A", "B"}, cm.Labels())
}

func TestConfusionMatrixInvalidLabels(t *testing.T) {
	_, err := NewConfusionMatrix(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = NewConfusionMatrix([]string{"A", "A"})
	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestRecallPrecision(t *testing.T) {
	cm, err := NewConfusionMatrix([]string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, cm.Add("A", "A"))
	require.NoError(t, cm.Add("A", "B"))
	require.NoError(t, cm.Add("B", "B"))

	recall, ok := cm.Recall("A")
	require.True(t, ok)
	assert.InDelta(t, 0.5, recall, 1e-12)

	precision, ok := cm.Precision("B")
	require.True(t, ok)
	assert.InDelta(t, 0.5, precision, 1e-12)

	empty, err := NewConfusionMatrix([]string{"A", "B"})
	require.NoError(t, err)
	_, ok = empty.Recall("A")
	assert.False(t, ok)
	_, ok = empty.Precision("Z")
	assert.False(t, ok)
	assert.Zero(t, empty.Accuracy())
}
