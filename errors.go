package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Move construction errors
	ErrZeroTurns        = errors.New("gocube: move has zero quarter turns")
	ErrUnknownFace      = errors.New("gocube: unknown face")
	ErrUnknownAxis      = errors.New("gocube: unknown axis")
	ErrUnknownDirection = errors.New("gocube: unknown turn direction")
	ErrInvalidLayers    = errors.New("gocube: invalid layer set")
	ErrInvalidMove      = errors.New("gocube: invalid move")

	// Parsing errors
	ErrInvalidNotation = errors.New("gocube: invalid move notation")

	// State errors
	ErrBrokenInvariant = errors.New("gocube: cube invariant violated")
	ErrNoHistory       = errors.New("gocube: no move to undo")
	ErrOrderNotFound   = errors.New("gocube: algorithm order exceeds limit")
)
