package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"
	"bikeshare/utils"
)

const byteOrderMark = "\ufeff"

// Loader reads the trips file of a city and applies the month and day filters
type Loader struct {
	config *config.ExplorerConfig
}

func NewLoader(explorerConfig *config.ExplorerConfig) *Loader {
	return &Loader{
		config: explorerConfig,
	}
}

func (l *Loader) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[loader: %s][method: %s][status: ERROR] %s: %s", city, method, message, err.Error())
	}
	return fmt.Sprintf("[loader: %s][method: %s][status: OK] %s", city, method, message)
}

// LoadData loads the trips of the selected city and keeps the ones that match the selected month and day
func (l *Loader) LoadData(selection filter.Selection) (*trip.Dataset, error) {
	startTime := time.Now()

	dataset, err := l.ReadSource(selection.City)
	if err != nil {
		return nil, err
	}
	totalTrips := dataset.Len()

	if selection.FiltersMonth() {
		month, ok := selection.MonthNumber()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMonth, selection.Month)
		}
		dataset = dataset.FilterByMonth(month)
	}

	if selection.FiltersDay() {
		if !utils.ContainsString(selection.Day, filter.Days) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDay, selection.Day)
		}
		dataset = dataset.FilterByWeekday(selection.WeekdayName())
	}

	message := fmt.Sprintf("%v of %v trips match %s, took %s", dataset.Len(), totalTrips, selection, time.Since(startTime))
	log.Info(l.getLogMessage(selection.City, "LoadData", message, nil))
	return dataset, nil
}

// ReadSource loads every trip of the city without filters
func (l *Loader) ReadSource(city string) (*trip.Dataset, error) {
	filepath, ok := l.config.GetCityFilepath(city)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}

	dataFile, err := os.Open(filepath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w for city %s: %s", ErrSourceFileNotFound, city, filepath)
		}
		return nil, fmt.Errorf("error opening %s: %w", filepath, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage(city, "ReadSource", "error closing "+filepath, err))
		}
	}(dataFile)

	return l.ReadTrips(city, dataFile)
}

// ReadTrips parses CSV trips data. Rows with an invalid start time or duration are skipped.
func (l *Loader) ReadTrips(city string, reader io.Reader) (*trip.Dataset, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s data has no header", ErrMissingColumn, city)
		}
		return nil, fmt.Errorf("error reading %s header: %w", city, err)
	}

	columnIndexes := getColumnIndexes(header)
	for _, column := range l.config.Columns.Required() {
		if _, ok := columnIndexes[column]; !ok {
			return nil, fmt.Errorf("%w: %q in %s data", ErrMissingColumn, column, city)
		}
	}

	dataset := trip.NewDataset(
		city,
		hasColumn(columnIndexes, l.config.Columns.Gender),
		hasColumn(columnIndexes, l.config.Columns.BirthYear),
	)

	skipped := 0
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s data: %w", city, err)
		}

		tripData, err := l.getTripData(row, columnIndexes)
		if err != nil {
			if errors.Is(err, ErrInvalidTripData) {
				log.Debug(l.getLogMessage(city, "ReadTrips", fmt.Sprintf("skipping row %v", row), err))
				skipped += 1
				continue
			}
			return nil, err
		}
		dataset.Add(tripData)
	}

	if skipped > 0 {
		log.Warn(l.getLogMessage(city, "ReadTrips", fmt.Sprintf("%v invalid rows skipped", skipped), nil))
	}
	log.Debug(l.getLogMessage(city, "ReadTrips", fmt.Sprintf("%v trips read", dataset.Len()), nil))
	return dataset, nil
}

func (l *Loader) getTripData(row []string, columnIndexes map[string]int) (*trip.TripData, error) {
	columns := l.config.Columns

	startTimeStr := getField(row, columnIndexes, columns.StartTime)
	startTime, err := time.Parse(l.config.StartTimeLayout, startTimeStr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDate, startTimeStr, ErrInvalidTripData)
	}

	durationStr := getField(row, columnIndexes, columns.TripDuration)
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDuration, durationStr, ErrInvalidTripData)
	}

	tripData := trip.NewTripData(
		startTime,
		getField(row, columnIndexes, columns.StartStation),
		getField(row, columnIndexes, columns.EndStation),
		duration,
		getField(row, columnIndexes, columns.UserType),
	)
	tripData.Gender = getField(row, columnIndexes, columns.Gender)

	birthYearStr := getField(row, columnIndexes, columns.BirthYear)
	if birthYearStr != "" {
		// birth years are written as floats, e.g. 1992.0
		birthYear, err := strconv.ParseFloat(birthYearStr, 64)
		if err != nil {
			// optional column, the trip is kept with an unknown birth year
			log.Debugf("[loader][method: getTripData] %s %q, keeping trip without birth year", ErrInvalidBirthYear, birthYearStr)
		} else {
			tripData.BirthYear = int(birthYear)
		}
	}

	return tripData, nil
}

// getColumnIndexes returns a map with the structure {column name: index in row}
func getColumnIndexes(header []string) map[string]int {
	columnIndexes := make(map[string]int, len(header))
	for idx, column := range header {
		if idx == 0 {
			column = strings.TrimPrefix(column, byteOrderMark)
		}
		columnIndexes[strings.TrimSpace(column)] = idx
	}
	return columnIndexes
}

func hasColumn(columnIndexes map[string]int, column string) bool {
	if column == "" {
		return false
	}
	_, ok := columnIndexes[column]
	return ok
}

// getField returns the trimmed value of column, or an empty string if the row does not have it
func getField(row []string, columnIndexes map[string]int, column string) string {
	idx, ok := columnIndexes[column]
	if !ok || column == "" || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
