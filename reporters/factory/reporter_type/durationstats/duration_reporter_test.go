package durationstats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/trip"
	reporterErrors "bikeshare/reporters/factory/reporter_type/errors"
)

func newDataset(durations ...float64) *trip.Dataset {
	dataset := trip.NewDataset("washington", false, false)
	startTime := time.Date(2017, time.May, 1, 10, 0, 0, 0, time.UTC)
	for _, duration := range durations {
		dataset.Add(trip.NewTripData(startTime, "A", "B", duration, "Customer"))
	}
	return dataset
}

func TestComputeStats(t *testing.T) {
	durations := []float64{489.066, 402.549, 637.251, 1200}
	stats, err := NewDurationReporter().ComputeStats(newDataset(durations...))
	require.NoError(t, err)

	sum := 0.0
	for _, duration := range durations {
		sum += duration
	}
	assert.InDelta(t, sum, stats.TotalDuration, 1e-9)
	assert.InDelta(t, sum/float64(len(durations)), stats.AverageDuration, 1e-9)
}

func TestGenerateReport(t *testing.T) {
	rep, err := NewDurationReporter().GenerateReport(newDataset(3600, 7200))
	require.NoError(t, err)

	total, _ := rep.GetValue("Total travel duration")
	assert.Equal(t, "10800 seconds (3h0m0s)", total)
	average, _ := rep.GetValue("Avg travel duration")
	assert.Equal(t, "5400 seconds (1h30m0s)", average)
}

func TestEmptyDataset(t *testing.T) {
	_, err := NewDurationReporter().GenerateReport(newDataset())
	assert.ErrorIs(t, err, reporterErrors.ErrEmptyDataset)
}
