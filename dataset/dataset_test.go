package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatDecimalComma(t *testing.T) {
	comma, err := ParseFloat("1,5")
	require.NoError(t, err)
	dot, err := ParseFloat("1.5")
	require.NoError(t, err)
	assert.Equal(t, dot, comma)
	assert.Equal(t, 1.5, comma)

	for _, bad := range []string{"abc", "1.2.3", "NaN", "+Inf", ""} {
		_, err := ParseFloat(bad)
		assert.Error(t, err, bad)
	}
}

func TestParse(t *testing.T) {
	input := "5,1\t3,5  1.4 0.2   Iris-setosa\n" +
		"\n" +
		"  7.0 3.2 4.7 1.4 Iris-versicolor  \n" +
		"6,3 3,3 6,0 2,5 Iris-virginica\n"

	ds, err := Parse(strings.NewReader(input), "training")
	require.NoError(t, err)

	assert.Equal(t, "training", ds.Name())
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 4, ds.NumFeatures())
	assert.Equal(t, []float64{5.1, 3.5, 1.4, 0.2}, ds.At(0).Features())
	assert.Equal(t, []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"}, ds.Labels())
}

func TestParseMalformedNumber(t *testing.T) {
	input := "1.0 2.0 A\n1.0 x B\n"

	_, err := Parse(strings.NewReader(input), "training")
	require.Error(t, err)

	var formatErr *errors.InputFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 2, formatErr.Line)
	assert.Equal(t, "x", formatErr.Token)
}

func TestParseFeatureCountMismatch(t *testing.T) {
	input := "1.0 2.0 A\n1.0 2.0 3.0 B\n"

	_, err := Parse(strings.NewReader(input), "training")
	require.Error(t, err)

	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Got)
}

func TestParseLabelOnlyRecord(t *testing.T) {
	_, err := Parse(strings.NewReader("A\n"), "test")
	var formatErr *errors.InputFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 1, formatErr.Line)
}

func TestParseFeatures(t *testing.T) {
	v, err := ParseFeatures("  1,1   2.05 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.1, 2.05}, v)

	_, err = ParseFeatures("1.1 two")
	var formatErr *errors.InputFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "two", formatErr.Token)
}

func TestNewAndImmutability(t *testing.T) {
	features := []float64{1, 2}
	s := NewSample(features, "A")
	features[0] = 99
	assert.Equal(t, 1.0, s.Feature(0), "NewSample must copy its input")

	out := s.Features()
	out[1] = 42
	assert.Equal(t, 2.0, s.Feature(1), "Features must return a copy")

	_, err := New("training", s, NewSample([]float64{1}, "B"))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestMatrix(t *testing.T) {
	ds, err := New("training",
		NewSample([]float64{1.0, 2.0}, "A"),
		NewSample([]float64{5.0, 6.0}, "B"),
	)
	require.NoError(t, err)

	X, y, err := ds.Matrix()
	require.NoError(t, err)
	r, c := X.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, X.At(1, 1))
	assert.Equal(t, []string{"A", "B"}, y)

	empty, err := New("test")
	require.NoError(t, err)
	_, _, err = empty.Matrix()
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iris_test.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 A\n3 4 B\n"), 0o600))

	ds, err := LoadFile(path, "test")
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.txt"), "test")
	assert.Error(t, err)
}
