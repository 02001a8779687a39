package entities

import (
	"fmt"
	"strings"
)

// Direction is a label a fairy can walk towards.
type Direction string

// Allowed walking directions.
const (
	DirectionNorth     Direction = "north"
	DirectionSouth     Direction = "south"
	DirectionEast      Direction = "east"
	DirectionWest      Direction = "west"
	DirectionLeft      Direction = "left"
	DirectionRight     Direction = "right"
	DirectionStraight  Direction = "straight"
	DirectionBackwards Direction = "backwards"
)

// allDirections keeps the declaration order for listings.
var allDirections = []Direction{
	DirectionNorth,
	DirectionSouth,
	DirectionEast,
	DirectionWest,
	DirectionLeft,
	DirectionRight,
	DirectionStraight,
	DirectionBackwards,
}

var directionSet = func() map[Direction]struct{} {
	set := make(map[Direction]struct{}, len(allDirections))
	for _, d := range allDirections {
		set[d] = struct{}{}
	}
	return set
}()

// AllDirections returns the allowed directions in a fresh slice.
func AllDirections() []Direction {
	out := make([]Direction, len(allDirections))
	copy(out, allDirections)
	return out
}

// IsValid reports whether d is one of the allowed directions.
// The comparison is exact; use ParseDirection for user input.
func (d Direction) IsValid() bool {
	_, ok := directionSet[d]
	return ok
}

// ParseDirection matches s case-insensitively against the allowed directions
// and returns the canonical lower-case form.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(s))
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}
