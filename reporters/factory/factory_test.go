package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reporterErrors "bikeshare/reporters/factory/reporter_type/errors"
)

func TestNewReporters(t *testing.T) {
	reporters, err := NewReporters(nil)
	require.NoError(t, err)

	var types []string
	for _, reporter := range reporters {
		types = append(types, reporter.GetType())
	}
	assert.Equal(t, DefaultReporterTypes, types)
}

func TestNewReportersKeepsOrder(t *testing.T) {
	reporters, err := NewReporters([]string{"user-stats", "time-stats"})
	require.NoError(t, err)
	require.Len(t, reporters, 2)
	assert.Equal(t, "user-stats", reporters[0].GetType())
	assert.Equal(t, "time-stats", reporters[1].GetType())
}

func TestNewReporterInvalidType(t *testing.T) {
	_, err := NewReporter("weather-stats")
	assert.ErrorIs(t, err, reporterErrors.ErrInvalidReporterType)

	_, err = NewReporters([]string{"time-stats", "weather-stats"})
	assert.ErrorIs(t, err, reporterErrors.ErrInvalidReporterType)
}
