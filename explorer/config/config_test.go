package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.StartTimeLayout)
	assert.Equal(t, []string{"time-stats", "station-stats", "duration-stats", "user-stats"}, cfg.Reporters)
	assert.Equal(t, "Start Time", cfg.Columns.StartTime)
	assert.Equal(t, "Gender", cfg.Columns.Gender)

	path, ok := cfg.GetCityFilepath("new york city")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(".", "new_york_city.csv"), path)

	_, ok = cfg.GetCityFilepath("boston")
	assert.False(t, ok)
}

func TestLoadConfigRejectsMissingCity(t *testing.T) {
	configBytes := []byte(`
start_time_layout: "2006-01-02 15:04:05"
city_files:
  chicago: chicago.csv
  washington: washington.csv
  boston: boston.csv
columns:
  start_time: Start Time
  start_station: Start Station
  end_station: End Station
  trip_duration: Trip Duration
  user_type: User Type
`)

	_, err := LoadConfigFromBytes(configBytes)
	assert.ErrorContains(t, err, "missing file for city new york city")
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfigFromBytes([]byte("city_files: ["))
	assert.ErrorContains(t, err, "error parsing explorer config file")
}
