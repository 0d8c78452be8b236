package engine

import "errors"

var (
	// ErrNoProgram means the calculator was built without a program.
	ErrNoProgram = errors.New("no program loaded")
	// ErrInvalidDates means the program's date range is missing or malformed.
	ErrInvalidDates = errors.New("invalid program dates")
)
