package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/internal/testutil"
	"bikeshare/loader"
	reporterErrors "bikeshare/reporters/factory/reporter_type/errors"
)

const greeting = "Hello! Let's explore some US bikeshare data!"

func runExplorer(t *testing.T, input string) (string, error) {
	t.Helper()

	cfg := testutil.WriteCityFiles(t)
	output := &bytes.Buffer{}
	explorer, err := NewExplorer(cfg, strings.NewReader(input), output)
	require.NoError(t, err)

	err = explorer.Run()
	return output.String(), err
}

func TestRunSingleIteration(t *testing.T) {
	output, err := runExplorer(t, "chicago\njanuary\nall\nNO\n")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(output, greeting))
	assert.Contains(t, output, "Loaded 3 trips (city: chicago, month: january, day: all)")
	assert.Contains(t, output, "Most common month = 1\n")
	assert.Contains(t, output, "Most common day of week = Monday\n")
	assert.Contains(t, output, "Most common start station = Canal St & Adams St\n")
	assert.Contains(t, output, "Most frequent trip = Canal St & Adams St -> Clark St & Randolph St (2 trips)\n")
	assert.Contains(t, output, "Total travel duration = 2276 seconds (37m56s)\n")
	assert.Contains(t, output, "Count for Gender\n  Female = 1\n  Male = 1\n  Unknown = 1\n")
}

func TestRunReportsInOrder(t *testing.T) {
	output, err := runExplorer(t, "chicago\nall\nall\nno\n")
	require.NoError(t, err)

	titles := []string{
		"Calculating The Most Frequent Times of Travel...",
		"Calculating The Most Popular Stations and Trip...",
		"Calculating Trip Duration...",
		"Calculating User Stats...",
	}
	previous := -1
	for _, title := range titles {
		idx := strings.Index(output, title)
		require.Greater(t, idx, previous, title)
		previous = idx
	}
}

func TestRunRestartsOnYes(t *testing.T) {
	output, err := runExplorer(t, "chicago\nall\nall\nYes\nwashington\nall\nall\nno\n")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(output, greeting))
	assert.Contains(t, output, "Loaded 5 trips (city: chicago, month: all, day: all)")
	assert.Contains(t, output, "Loaded 3 trips (city: washington, month: all, day: all)")
	assert.Contains(t, output, "Gender not available for washington")
}

func TestRunStopsOnAnythingButYes(t *testing.T) {
	for _, answer := range []string{"\n", "y\n", "yes please\n", "nope\n"} {
		output, err := runExplorer(t, "washington\nall\nall\n"+answer+"chicago\nall\nall\nno\n")
		require.NoError(t, err, answer)
		assert.Equal(t, 1, strings.Count(output, greeting), answer)
	}
}

func TestRunRepromptsInvalidSelections(t *testing.T) {
	output, err := runExplorer(t, "boston\n Chicago \nsummer\nFebruary\nfunday\nMONDAY\nno\n")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(output, "invalid input"))
	assert.Contains(t, output, "Loaded 1 trips (city: chicago, month: february, day: monday)")
}

func TestRunEmptyDataset(t *testing.T) {
	output, err := runExplorer(t, "chicago\ndecember\nall\nno\n")
	require.NoError(t, err)

	assert.Contains(t, output, "No trips match the selected filters.")
	assert.NotContains(t, output, "Calculating")
	assert.Contains(t, output, "Would you like to restart?")
}

func TestRunInputClosed(t *testing.T) {
	output, err := runExplorer(t, "chicago\njanuary\n")
	require.NoError(t, err)
	assert.NotContains(t, output, "Calculating")

	output, err = runExplorer(t, "chicago\njanuary\nall\n")
	require.NoError(t, err)
	assert.Contains(t, output, "Calculating User Stats...")
}

func TestRunSourceFileNotFound(t *testing.T) {
	cfg := testutil.WriteCityFiles(t)
	require.NoError(t, os.Remove(filepath.Join(cfg.DataDir, cfg.CityFiles["washington"])))

	explorer, err := NewExplorer(cfg, strings.NewReader("washington\nall\nall\nno\n"), &bytes.Buffer{})
	require.NoError(t, err)

	err = explorer.Run()
	assert.ErrorIs(t, err, loader.ErrSourceFileNotFound)
}

func TestNewExplorerInvalidReporter(t *testing.T) {
	cfg := testutil.WriteCityFiles(t)
	cfg.Reporters = []string{"time-stats", "weather-stats"}

	_, err := NewExplorer(cfg, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, reporterErrors.ErrInvalidReporterType)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger("info"))
	assert.Error(t, InitLogger("loud"))
}
