package wavetable

import "errors"

var (
	// ErrEmptyTable is returned when a table is built from zero samples.
	ErrEmptyTable = errors.New("wavetable must not be empty")
	// ErrNegativeValue is returned when a table sample is below zero.
	ErrNegativeValue = errors.New("wavetable values must be >= 0")
)
