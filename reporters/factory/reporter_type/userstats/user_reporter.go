package userstats

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
	reporterType = "user-stats"
	title        = "Calculating User Stats..."
	unknownValue = "Unknown"
)

// BirthYearStats earliest, most recent and most common birth year among the trips that have one
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// UserStats distribution of user types and genders of the dataset.
// + GenderCounts: nil if the city does not report gender
// + BirthYears: nil if the city does not report birth year or no trip has one
type UserStats struct {
	UserTypeCounts []frequencycounter.ValueCount[string] `json:"user_type_counts"`
	GenderCounts   []frequencycounter.ValueCount[string] `json:"gender_counts"`
	BirthYears     *BirthYearStats                        `json:"birth_years"`
}

type UserReporter struct{}

func NewUserReporter() *UserReporter {
	return &UserReporter{}
}

func (ur *UserReporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporterType, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporterType, method, message)
}

func (ur *UserReporter) GetType() string {
	return reporterType
}

// ComputeStats counts user types and genders. Empty values are counted as Unknown,
// so each distribution adds up to the amount of trips.
func (ur *UserReporter) ComputeStats(dataset *trip.Dataset) (*UserStats, error) {
	if dataset.IsEmpty() {
		return nil, reporterErrors.ErrEmptyDataset
	}

	userTypeCounter := frequencycounter.NewFrequencyCounter[string](frequencycounter.Ascending[string])
	genderCounter := frequencycounter.NewFrequencyCounter[string](frequencycounter.Ascending[string])
	birthYearCounter := frequencycounter.NewFrequencyCounter[int](frequencycounter.Ascending[int])
	var birthYears BirthYearStats

	for _, tripData := range dataset.Trips {
		userTypeCounter.UpdateCounter(valueOrUnknown(tripData.UserType))

		if dataset.HasGender {
			genderCounter.UpdateCounter(valueOrUnknown(tripData.Gender))
		}

		if dataset.HasBirthYear && tripData.HasBirthYear() {
			if birthYearCounter.IsEmpty() || tripData.BirthYear < birthYears.Earliest {
				birthYears.Earliest = tripData.BirthYear
			}
			if tripData.BirthYear > birthYears.MostRecent {
				birthYears.MostRecent = tripData.BirthYear
			}
			birthYearCounter.UpdateCounter(tripData.BirthYear)
		}
	}

	stats := &UserStats{
		UserTypeCounts: userTypeCounter.ValueCounts(),
	}

	if dataset.HasGender {
		stats.GenderCounts = genderCounter.ValueCounts()
	}

	if mostCommon, ok := birthYearCounter.Mode(); ok {
		birthYears.MostCommon = mostCommon.Value
		stats.BirthYears = &birthYears
	}

	return stats, nil
}

func (ur *UserReporter) GenerateReport(dataset *trip.Dataset) (*report.Report, error) {
	startTime := time.Now()

	stats, err := ur.ComputeStats(dataset)
	if err != nil {
		log.Debug(ur.getLogMessage("GenerateReport", "error computing stats", err))
		return nil, err
	}

	userReport := report.NewReport(dataset.GetMetadata(), reporterType, title)
	userReport.AddSection("Count for User Type", toLines(stats.UserTypeCounts))

	if stats.GenderCounts != nil {
		userReport.AddSection("Count for Gender", toLines(stats.GenderCounts))
	} else {
		userReport.AddNote("Gender not available for " + dataset.GetCity())
	}

	if stats.BirthYears != nil {
		userReport.AddLine("Earliest year of birth", stats.BirthYears.Earliest)
		userReport.AddLine("Most recent year of birth", stats.BirthYears.MostRecent)
		userReport.AddLine("Most common year of birth", stats.BirthYears.MostCommon)
	} else {
		userReport.AddNote("Birth year not available for " + dataset.GetCity())
	}

	userReport.SetElapsed(time.Since(startTime))

	log.Debug(ur.getLogMessage("GenerateReport", "report generated", nil))
	return userReport, nil
}

func valueOrUnknown(value string) string {
	if value == "" {
		return unknownValue
	}
	return value
}

func toLines(valueCounts []frequencycounter.ValueCount[string]) []report.Line {
	lines := make([]report.Line, 0, len(valueCounts))
	for _, valueCount := range valueCounts {
		lines = append(lines, report.Line{Name: valueCount.Value, Value: fmt.Sprint(valueCount.Count)})
	}
	return lines
}
