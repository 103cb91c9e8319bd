// Package dataset holds labeled numeric samples and parses them from
// whitespace-delimited text records.
package dataset

import (
	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Sample is a fixed-length feature vector with its class label.
// The zero value is an empty unlabeled sample.
type Sample struct {
	features []float64
	label    string
}

// NewSample copies features into a new Sample.
func NewSample(features []float64, label string) Sample {
	return Sample{features: append([]float64(nil), features...), label: label}
}

// Label returns the class label.
func (s Sample) Label() string { return s.label }

// Len returns the number of features.
func (s Sample) Len() int { return len(s.features) }

// Feature returns feature i.
func (s Sample) Feature(i int) float64 { return s.features[i] }

// Features returns a copy of the feature vector.
func (s Sample) Features() []float64 {
	return append([]float64(nil), s.features...)
}

// Dataset is an ordered, immutable sequence of samples sharing one feature count.
type Dataset struct {
	name      string
	samples   []Sample
	nFeatures int
}

// New builds a Dataset named name. The feature count is taken from the first
// sample; any later sample of a different length is a DimensionError.
func New(name string, samples ...Sample) (*Dataset, error) {
	ds := &Dataset{name: name, samples: make([]Sample, 0, len(samples))}
	for _, s := range samples {
		if err := ds.add(s); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func (d *Dataset) add(s Sample) error {
	if len(d.samples) == 0 {
		d.nFeatures = s.Len()
	} else if s.Len() != d.nFeatures {
		return errors.Wrapf(
			errors.NewDimensionError("dataset."+d.name, d.nFeatures, s.Len(), 1),
			"sample %d", len(d.samples)+1)
	}
	d.samples = append(d.samples, s)
	return nil
}

// Name returns the dataset name, e.g. "training" or "test".
func (d *Dataset) Name() string { return d.name }

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.samples) }

// NumFeatures returns the shared feature count, 0 for an empty dataset.
func (d *Dataset) NumFeatures() int { return d.nFeatures }

// At returns sample i.
func (d *Dataset) At(i int) Sample { return d.samples[i] }

// Labels returns the labels of all samples in order.
func (d *Dataset) Labels() []string {
	labels := make([]string, len(d.samples))
	for i, s := range d.samples {
		labels[i] = s.label
	}
	return labels
}

// Matrix returns the features as an n_samples × n_features matrix together
// with the aligned labels.
func (d *Dataset) Matrix() (*mat.Dense, []string, error) {
	if len(d.samples) == 0 || d.nFeatures == 0 {
		return nil, nil, errors.Wrapf(errors.ErrEmptyData, "dataset %q", d.name)
	}
	X := mat.NewDense(len(d.samples), d.nFeatures, nil)
	for i, s := range d.samples {
		X.SetRow(i, s.features)
	}
	return X, d.Labels(), nil
}
