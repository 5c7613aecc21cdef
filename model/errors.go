package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a universe is requested with a
	// non-positive row or column count.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrDimensionTooSmall is returned when the seed pattern does not fit
	// inside the requested grid.
	ErrDimensionTooSmall = errors.New("dimension too small for seed pattern")
)
