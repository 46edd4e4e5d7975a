package filter

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the value that disables a month or day constraint
const All = "all"

const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
)

var (
	// Cities contains the only three cities with bikeshare data
	Cities = []string{Chicago, NewYorkCity, Washington}

	// Months contains "all" followed by the month names in calendar order
	Months = []string{
		All, "january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}

	// Days contains "all" followed by the weekday names, Sunday first
	Days = []string{All, "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	monthNumbers = map[string]time.Month{
		"january":   time.January,
		"february":  time.February,
		"march":     time.March,
		"april":     time.April,
		"may":       time.May,
		"june":      time.June,
		"july":      time.July,
		"august":    time.August,
		"september": time.September,
		"october":   time.October,
		"november":  time.November,
		"december":  time.December,
	}

	titleCaser = cases.Title(language.English)
)

// Selection struct that contains the filters chosen by the user for one session iteration
// + City: one of Cities
// + Month: one of Months, All means no month constraint
// + Day: one of Days, All means no day constraint
type Selection struct {
	City  string
	Month string
	Day   string
}

func NewSelection(city string, month string, day string) Selection {
	return Selection{
		City:  city,
		Month: month,
		Day:   day,
	}
}

// FiltersMonth returns true if the selection constrains the month
func (s Selection) FiltersMonth() bool {
	return s.Month != All
}

// FiltersDay returns true if the selection constrains the weekday
func (s Selection) FiltersDay() bool {
	return s.Day != All
}

// MonthNumber returns the calendar month of the selection. The second value is false
// when the selection has no month constraint or the month name is unknown.
func (s Selection) MonthNumber() (time.Month, bool) {
	return MonthNumber(s.Month)
}

// WeekdayName returns the selected day as it appears in derived trip data, e.g. monday -> Monday
func (s Selection) WeekdayName() string {
	return WeekdayName(s.Day)
}

func (s Selection) String() string {
	return "city: " + s.City + ", month: " + s.Month + ", day: " + s.Day
}

// MonthNumber maps a lowercase month name to its calendar number
func MonthNumber(monthName string) (time.Month, bool) {
	month, ok := monthNumbers[monthName]
	return month, ok
}

// WeekdayName title-cases a weekday name
func WeekdayName(day string) string {
	return titleCaser.String(day)
}
