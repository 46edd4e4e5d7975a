package durationstats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/trip"
	reporterErrors "bikeshare/reporters/factory/reporter_type/errors"
)

const (
	reporterType = "duration-stats"
	title        = "Calculating Trip Duration..."
)

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	TotalDuration   float64 `json:"total_duration"`
	AverageDuration float64 `json:"average_duration"`
}

type DurationReporter struct{}

func NewDurationReporter() *DurationReporter {
	return &DurationReporter{}
}

func (dr *DurationReporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporterType, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporterType, method, message)
}

func (dr *DurationReporter) GetType() string {
	return reporterType
}

func (dr *DurationReporter) ComputeStats(dataset *trip.Dataset) (*DurationStats, error) {
	if dataset.IsEmpty() {
		return nil, reporterErrors.ErrEmptyDataset
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range dataset.Trips {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	average, err := accumulator.GetAverageDuration()
	if err != nil {
		return nil, err
	}

	return &DurationStats{
		TotalDuration:   accumulator.GetTotalDuration(),
		AverageDuration: average,
	}, nil
}

func (dr *DurationReporter) GenerateReport(dataset *trip.Dataset) (*report.Report, error) {
	startTime := time.Now()

	stats, err := dr.ComputeStats(dataset)
	if err != nil {
		log.Debug(dr.getLogMessage("GenerateReport", "error computing stats", err))
		return nil, err
	}

	durationReport := report.NewReport(dataset.GetMetadata(), reporterType, title)
	durationReport.AddLine("Total travel duration", formatSeconds(stats.TotalDuration))
	durationReport.AddLine("Avg travel duration", formatSeconds(stats.AverageDuration))
	durationReport.SetElapsed(time.Since(startTime))

	log.Debug(dr.getLogMessage("GenerateReport", "report generated", nil))
	return durationReport, nil
}

// formatSeconds e.g. 3725 -> "3725 seconds (1h2m5s)"
func formatSeconds(seconds float64) string {
	return fmt.Sprintf("%v seconds (%s)", seconds, durationaccumulator.AsDuration(seconds))
}
