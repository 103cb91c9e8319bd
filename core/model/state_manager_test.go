package model

import (
	"sync"
	"testing"

	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()
	assert.False(t, s.IsFitted())

	err := s.RequireFitted("GaussianNB", "Classify")
	require.Error(t, err)
	var nf *errors.NotFittedError
	assert.True(t, errors.As(err, &nf))

	s.SetFitted(4, 120)
	assert.True(t, s.IsFitted())
	nFeatures, nSamples := s.Dimensions()
	assert.Equal(t, 4, nFeatures)
	assert.Equal(t, 120, nSamples)
	assert.NoError(t, s.RequireFitted("GaussianNB", "Classify"))

	s.Reset()
	assert.False(t, s.IsFitted())
	nFeatures, _ = s.Dimensions()
	assert.Zero(t, nFeatures)
}

func TestStateManagerRequireFeatures(t *testing.T) {
	s := NewStateManager()
	s.SetFitted(2, 4)

	assert.NoError(t, s.RequireFeatures("Classify", 2))

	err := s.RequireFeatures("Classify", 3)
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Got)
}

func TestStateManagerConcurrentReads(t *testing.T) {
	s := NewStateManager()
	s.SetFitted(3, 10)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, s.IsFitted())
		}()
	}
	wg.Wait()
}
