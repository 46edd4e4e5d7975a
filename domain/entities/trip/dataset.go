package trip

import (
	"time"

	"bikeshare/domain/entities"
)

// Dataset is the table of trips of a city. Filtering a Dataset never copies trips,
// the result shares the *TripData of its parent.
// + Metadata: city and filters applied to the dataset
// + HasGender: the source file has a Gender column
// + HasBirthYear: the source file has a Birth Year column
type Dataset struct {
	Metadata     entities.Metadata `json:"metadata"`
	HasGender    bool              `json:"has_gender"`
	HasBirthYear bool              `json:"has_birth_year"`
	Trips        []*TripData       `json:"trips"`
}

func NewDataset(city string, hasGender bool, hasBirthYear bool) *Dataset {
	return &Dataset{
		Metadata:     entities.NewMetadata(city, entities.AllValues, entities.AllValues),
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
	}
}

func (d *Dataset) GetMetadata() entities.Metadata {
	return d.Metadata
}

func (d *Dataset) GetCity() string {
	return d.Metadata.GetCity()
}

func (d *Dataset) Add(tripData *TripData) {
	d.Trips = append(d.Trips, tripData)
}

func (d *Dataset) Len() int {
	return len(d.Trips)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.Trips) == 0
}

// Where returns a Dataset with the trips that satisfy keep
func (d *Dataset) Where(keep func(tripData *TripData) bool) *Dataset {
	trips := make([]*TripData, 0, len(d.Trips))
	for _, tripData := range d.Trips {
		if keep(tripData) {
			trips = append(trips, tripData)
		}
	}

	return &Dataset{
		Metadata:     d.Metadata,
		HasGender:    d.HasGender,
		HasBirthYear: d.HasBirthYear,
		Trips:        trips,
	}
}

// FilterByMonth keeps the trips that start in month
func (d *Dataset) FilterByMonth(month time.Month) *Dataset {
	filtered := d.Where(func(tripData *TripData) bool {
		return tripData.Month == month
	})
	filtered.Metadata.Month = month.String()
	return filtered
}

// FilterByWeekday keeps the trips whose derived weekday name is weekdayName, e.g. Monday
func (d *Dataset) FilterByWeekday(weekdayName string) *Dataset {
	filtered := d.Where(func(tripData *TripData) bool {
		return tripData.GetWeekdayName() == weekdayName
	})
	filtered.Metadata.Day = weekdayName
	return filtered
}
