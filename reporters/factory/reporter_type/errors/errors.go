package errors

import "errors"

var (
	ErrEmptyDataset        = errors.New("no trips match the selected filters")
	ErrInvalidReporterType = errors.New("invalid reporter type")
)
