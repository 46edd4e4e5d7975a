package stationstats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/trip"
	reporterErrors "bikeshare/reporters/factory/reporter_type/errors"
)

const (
	reporterType = "station-stats"
	title        = "Calculating The Most Popular Stations and Trip..."
)

// StationStats most popular stations and trip. Ties are resolved in favour of the
// station name, or station pair, that sorts first.
type StationStats struct {
	MostCommonStartStation string           `json:"most_common_start_station"`
	MostCommonEndStation   string           `json:"most_common_end_station"`
	MostFrequentTrip       trip.StationPair `json:"most_frequent_trip"`
	MostFrequentTripCount  int              `json:"most_frequent_trip_count"`
}

type StationReporter struct{}

func NewStationReporter() *StationReporter {
	return &StationReporter{}
}

func (sr *StationReporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporterType, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporterType, method, message)
}

func (sr *StationReporter) GetType() string {
	return reporterType
}

func (sr *StationReporter) ComputeStats(dataset *trip.Dataset) (*StationStats, error) {
	if dataset.IsEmpty() {
		return nil, reporterErrors.ErrEmptyDataset
	}

	startCounter := frequencycounter.NewFrequencyCounter[string](frequencycounter.Ascending[string])
	endCounter := frequencycounter.NewFrequencyCounter[string](frequencycounter.Ascending[string])
	pairCounter := frequencycounter.NewFrequencyCounter[trip.StationPair](func(a trip.StationPair, b trip.StationPair) bool {
		return a.Less(b)
	})

	for _, tripData := range dataset.Trips {
		startCounter.UpdateCounter(tripData.StartStation)
		endCounter.UpdateCounter(tripData.EndStation)
		pairCounter.UpdateCounter(tripData.GetStationPair())
	}

	startStation, _ := startCounter.Mode()
	endStation, _ := endCounter.Mode()
	pair, _ := pairCounter.Mode()

	return &StationStats{
		MostCommonStartStation: startStation.Value,
		MostCommonEndStation:   endStation.Value,
		MostFrequentTrip:       pair.Value,
		MostFrequentTripCount:  pair.Count,
	}, nil
}

func (sr *StationReporter) GenerateReport(dataset *trip.Dataset) (*report.Report, error) {
	startTime := time.Now()

	stats, err := sr.ComputeStats(dataset)
	if err != nil {
		log.Debug(sr.getLogMessage("GenerateReport", "error computing stats", err))
		return nil, err
	}

	stationReport := report.NewReport(dataset.GetMetadata(), reporterType, title)
	stationReport.AddLine("Most common start station", stats.MostCommonStartStation)
	stationReport.AddLine("Most common end station", stats.MostCommonEndStation)
	stationReport.AddLine("Most frequent trip", fmt.Sprintf("%s (%v trips)", stats.MostFrequentTrip, stats.MostFrequentTripCount))
	stationReport.SetElapsed(time.Since(startTime))

	log.Debug(sr.getLogMessage("GenerateReport", "report generated", nil))
	return stationReport, nil
}
