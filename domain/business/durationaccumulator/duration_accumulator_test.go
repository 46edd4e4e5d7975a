package durationaccumulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator(t *testing.T) {
	accumulator := NewDurationAccumulator()
	for _, duration := range []float64{120.5, 300, 79.5} {
		accumulator.UpdateAccumulator(duration)
	}

	assert.InDelta(t, 500.0, accumulator.GetTotalDuration(), 1e-9)
	average, err := accumulator.GetAverageDuration()
	require.NoError(t, err)
	assert.InDelta(t, 500.0/3, average, 1e-9)
}

func TestAverageWithoutData(t *testing.T) {
	_, err := NewDurationAccumulator().GetAverageDuration()
	assert.ErrorIs(t, err, ErrNoDurations)
}

func TestAsDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour+3*time.Second, AsDuration(7203.4))
}
