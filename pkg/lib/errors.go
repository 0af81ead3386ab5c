package lib

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist,
	// e.g. testing a script whose file is missing.
	ErrNotFound = errors.New("not found")

	// ErrNotValid is returned on invalid input or operations, e.g. running
	// without search directories or silencing with a malformed pattern.
	ErrNotValid = errors.New("not valid")
)
