package entities

import "errors"

// Errors returned by Fairy operations. They are wrapped with context, so
// callers should match them with errors.Is.
var (
	ErrOutOfRange         = errors.New("height out of range")
	ErrCapacity           = errors.New("collection is full")
	ErrNotFound           = errors.New("item not in collection")
	ErrInsufficientEnergy = errors.New("not enough energy")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrAlreadyAtBound     = errors.New("already at height bound")
)
