package models

import "errors"

var (
	// ErrInvalidInput is returned when a value fails validation at construction time.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when a computation is undefined for otherwise
	// valid values, e.g. neither flatmate spent any day in the house.
	ErrInvalidState = errors.New("invalid state")
)
