package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a board is built with a non-positive width or height
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrOutOfBounds is returned for coordinates outside [0,width) x [0,height)
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidCell is returned when writing a value other than Dead or Alive
	ErrInvalidCell = errors.New("invalid cell value")
	// ErrInvalidDensity is returned for a random fill density outside [0,1]
	ErrInvalidDensity = errors.New("invalid density")
	// ErrUnknownPattern is returned by LookupPattern
	ErrUnknownPattern = errors.New("unknown pattern")
)
