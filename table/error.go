package table

// Predefined errors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrOutOfRange   = errors.New("number of philosophers out of range")
	ErrBadRange     = errors.New("invalid duration range")
	ErrBadEatTarget = errors.New("eat target must be positive")
	ErrBadTimeUnit  = errors.New("time unit must not be negative")
	ErrInterrupted  = errors.New("sleep interrupted")
	ErrAlreadyRun   = errors.New("table has already been run")
)
