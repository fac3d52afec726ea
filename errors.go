package kociemba

import (
	"errors"

	"github.com/SeamusWaldron/kociemba/internal/cube"
	"github.com/SeamusWaldron/kociemba/internal/search"
)

// Sentinel errors for the kociemba package.
var (
	// Input errors
	ErrMalformedInput  = cube.ErrMalformedInput
	ErrInvalidCenters  = cube.ErrInvalidCenters
	ErrInvalidNotation = errors.New("kociemba: invalid move notation")

	// Solvability
	ErrUnsolvableCube = cube.ErrUnsolvable

	// Search errors
	ErrSearchExhausted = search.ErrExhausted
	ErrTimeout         = search.ErrAborted
)
