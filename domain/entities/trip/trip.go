package trip

import (
	"time"
)

// TripData struct that contains the fields of a trip record used by the reporters
// + StartTime: date and time in which the trip begins
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: type of user, e.g. Subscriber or Customer
// + Gender: gender of the user, empty if the city does not report it
// + BirthYear: birth year of the user, zero if unknown
// + Month, Weekday, StartHour: derived from StartTime at load time
type TripData struct {
	StartTime    time.Time    `json:"start_time"`
	StartStation string       `json:"start_station"`
	EndStation   string       `json:"end_station"`
	Duration     float64      `json:"duration"`
	UserType     string       `json:"user_type"`
	Gender       string       `json:"gender"`
	BirthYear    int          `json:"birth_year"`
	Month        time.Month   `json:"month"`
	Weekday      time.Weekday `json:"weekday"`
	StartHour    int          `json:"start_hour"`
}

// NewTripData builds a TripData and derives month, weekday and start hour from startTime
func NewTripData(startTime time.Time, startStation string, endStation string, duration float64, userType string) *TripData {
	return &TripData{
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        startTime.Month(),
		Weekday:      startTime.Weekday(),
		StartHour:    startTime.Hour(),
	}
}

// GetWeekdayName returns the derived weekday as a name, e.g. Monday
func (td *TripData) GetWeekdayName() string {
	return td.Weekday.String()
}

// HasBirthYear returns true if the birth year of the user is known
func (td *TripData) HasBirthYear() bool {
	return td.BirthYear > 0
}

// GetStationPair returns the pair start station - end station of the trip
func (td *TripData) GetStationPair() StationPair {
	return StationPair{Start: td.StartStation, End: td.EndStation}
}

// StationPair identifies a trip by its start and end stations
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Less orders pairs by start station and then by end station
func (sp StationPair) Less(other StationPair) bool {
	if sp.Start != other.Start {
		return sp.Start < other.Start
	}
	return sp.End < other.End
}

func (sp StationPair) String() string {
	return sp.Start + " -> " + sp.End
}
