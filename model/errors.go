package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is constructed with a non-positive width or height
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrInvalidDensity is returned when the density weighting is outside [MinDensity, MaxDensity]
	ErrInvalidDensity = errors.New("invalid density")
	// ErrOutOfRange is returned when a row or column does not address a cell of the current grid
	ErrOutOfRange = errors.New("coordinate out of range")
)
