package factory

import (
	"fmt"

	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/trip"
	"bikeshare/reporters/factory/reporter_type/durationstats"
	reporterErrors "bikeshare/reporters/factory/reporter_type/errors"
	"bikeshare/reporters/factory/reporter_type/stationstats"
	"bikeshare/reporters/factory/reporter_type/timestats"
	"bikeshare/reporters/factory/reporter_type/userstats"
)

const (
	timeStatsType     = "time-stats"
	stationStatsType  = "station-stats"
	durationStatsType = "duration-stats"
	userStatsType     = "user-stats"
)

// DefaultReporterTypes all reporters, in the order their reports are shown
var DefaultReporterTypes = []string{timeStatsType, stationStatsType, durationStatsType, userStatsType}

// Reporter computes statistics over a filtered dataset
type Reporter interface {
	GetType() string
	GenerateReport(dataset *trip.Dataset) (*report.Report, error)
}

// NewReporter initialize a reporter of some type.
// Possible reporter types are: time-stats, station-stats, duration-stats, user-stats
func NewReporter(reporterType string) (Reporter, error) {
	switch reporterType {
	case timeStatsType:
		return timestats.NewTimeReporter(), nil
	case stationStatsType:
		return stationstats.NewStationReporter(), nil
	case durationStatsType:
		return durationstats.NewDurationReporter(), nil
	case userStatsType:
		return userstats.NewUserReporter(), nil
	}

	return nil, fmt.Errorf("[method: NewReporter][status: error] %w %s", reporterErrors.ErrInvalidReporterType, reporterType)
}

// NewReporters initialize one reporter per type, keeping the order of reporterTypes.
// If reporterTypes is empty every reporter is returned.
func NewReporters(reporterTypes []string) ([]Reporter, error) {
	if len(reporterTypes) == 0 {
		reporterTypes = DefaultReporterTypes
	}

	reporters := make([]Reporter, 0, len(reporterTypes))
	for _, reporterType := range reporterTypes {
		reporter, err := NewReporter(reporterType)
		if err != nil {
			return nil, err
		}
		reporters = append(reporters, reporter)
	}
	return reporters, nil
}
