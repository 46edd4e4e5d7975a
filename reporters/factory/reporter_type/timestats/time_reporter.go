package timestats

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
	reporterType = "time-stats"
	title        = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats most frequent times of travel. Ties are resolved in favour of the
// earliest month, the earliest weekday (Sunday first) and the earliest hour.
type TimeStats struct {
	MostCommonMonth   time.Month   `json:"most_common_month"`
	MostCommonWeekday time.Weekday `json:"most_common_weekday"`
	MostCommonHour    int          `json:"most_common_hour"`
}

type TimeReporter struct{}

func NewTimeReporter() *TimeReporter {
	return &TimeReporter{}
}

func (tr *TimeReporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporterType, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporterType, method, message)
}

func (tr *TimeReporter) GetType() string {
	return reporterType
}

// ComputeStats returns the most common month, weekday and start hour of the dataset
func (tr *TimeReporter) ComputeStats(dataset *trip.Dataset) (*TimeStats, error) {
	if dataset.IsEmpty() {
		return nil, reporterErrors.ErrEmptyDataset
	}

	monthCounter := frequencycounter.NewFrequencyCounter[time.Month](frequencycounter.Ascending[time.Month])
	weekdayCounter := frequencycounter.NewFrequencyCounter[time.Weekday](frequencycounter.Ascending[time.Weekday])
	hourCounter := frequencycounter.NewFrequencyCounter[int](frequencycounter.Ascending[int])

	for _, tripData := range dataset.Trips {
		monthCounter.UpdateCounter(tripData.Month)
		weekdayCounter.UpdateCounter(tripData.Weekday)
		hourCounter.UpdateCounter(tripData.StartHour)
	}

	month, _ := monthCounter.Mode()
	weekday, _ := weekdayCounter.Mode()
	hour, _ := hourCounter.Mode()

	return &TimeStats{
		MostCommonMonth:   month.Value,
		MostCommonWeekday: weekday.Value,
		MostCommonHour:    hour.Value,
	}, nil
}

func (tr *TimeReporter) GenerateReport(dataset *trip.Dataset) (*report.Report, error) {
	startTime := time.Now()

	stats, err := tr.ComputeStats(dataset)
	if err != nil {
		log.Debug(tr.getLogMessage("GenerateReport", "error computing stats", err))
		return nil, err
	}

	timeReport := report.NewReport(dataset.GetMetadata(), reporterType, title)
	timeReport.AddLine("Most common month", int(stats.MostCommonMonth))
	timeReport.AddLine("Most common day of week", stats.MostCommonWeekday)
	timeReport.AddLine("Most common start hour", stats.MostCommonHour)
	timeReport.SetElapsed(time.Since(startTime))

	log.Debug(tr.getLogMessage("GenerateReport", "report generated", nil))
	return timeReport, nil
}
