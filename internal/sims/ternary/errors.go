package ternary

import "errors"

var (
	// ErrInvalidRule is returned when a rule number is not an integer in [0, MaxRule].
	ErrInvalidRule = errors.New("invalid rule number")
	// ErrInvalidState is returned when a configuration is empty or holds a value outside {0,1,2}.
	ErrInvalidState = errors.New("invalid cell state")
	// ErrInvalidSteps is returned when a negative step count is requested.
	ErrInvalidSteps = errors.New("invalid step count")
)
