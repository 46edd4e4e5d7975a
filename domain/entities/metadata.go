package entities

import "fmt"

// AllValues is used in Metadata when a filter axis has no constraint
const AllValues = "all"

// Metadata this struct contains extra information about the data being reported
// + City: city which belongs the data
// + Month: month filter applied to the data
// + Day: weekday filter applied to the data
type Metadata struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func NewMetadata(city string, month string, day string) Metadata {
	return Metadata{
		City:  city,
		Month: month,
		Day:   day,
	}
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", m.City, m.Month, m.Day)
}
