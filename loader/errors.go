package loader

import "errors"

var (
	ErrUnknownCity        = errors.New("unknown city")
	ErrUnknownMonth       = errors.New("unknown month")
	ErrUnknownDay         = errors.New("unknown day")
	ErrSourceFileNotFound = errors.New("source file not found")
	ErrMissingColumn      = errors.New("required column missing")
	ErrInvalidTripData    = errors.New("invalid trip data")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidDuration    = errors.New("invalid duration type")
	ErrInvalidBirthYear   = errors.New("invalid birth year type")
)
