// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Fairy limits. Heights are in centimetres.
const (
	MinHeight = 1
	MaxHeight = 20
	MinEnergy = 0
	MaxEnergy = 100
	MaxItems  = 15
)

// Energy costs of the fairy's actions.
const (
	UseCost         = 2
	WalkCost        = 5
	FlyCostPerMeter = 5
	TransformCost   = 20
)

// DefaultName is used when a fairy is created without a name.
const DefaultName = "<Name Unknown>"

// Fairy is a small creature with a height, an energy level and a bounded
// collection of items. Every mutating method either succeeds completely or
// returns an error and leaves the fairy untouched.
type Fairy struct {
	id           string
	name         string
	height       int
	normalHeight int
	energy       int
	items        []string
	createdAt    time.Time
}

// FairyState is a read-only snapshot of a fairy.
type FairyState struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Height       int       `json:"height"`
	NormalHeight int       `json:"normal_height"`
	Energy       int       `json:"energy"`
	Items        []string  `json:"items"`
	CreatedAt    time.Time `json:"created_at"`
}

// Option configures a fairy at construction time.
type Option func(*Fairy)

// WithName sets the fairy's name.
func WithName(name string) Option {
	return func(f *Fairy) {
		f.name = name
	}
}

// WithHeight sets the fairy's height, which also becomes its normal height.
func WithHeight(height int) Option {
	return func(f *Fairy) {
		f.height = height
	}
}

// NewFairy creates a fairy with full energy and an empty collection.
// Without options the fairy is named DefaultName and is MinHeight tall.
func NewFairy(opts ...Option) (*Fairy, error) {
	f := &Fairy{
		name:   DefaultName,
		height: MinHeight,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.height < MinHeight || f.height > MaxHeight {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d cm)", ErrOutOfRange, f.height, MinHeight, MaxHeight)
	}

	f.id = uuid.New().String()
	f.normalHeight = f.height
	f.energy = MaxEnergy
	f.items = []string{}
	f.createdAt = time.Now().UTC()

	return f, nil
}

// ID returns the fairy's unique identifier.
func (f *Fairy) ID() string { return f.id }

// Name returns the fairy's name.
func (f *Fairy) Name() string { return f.name }

// SetName renames the fairy.
func (f *Fairy) SetName(name string) { f.name = name }

// Height returns the current height.
func (f *Fairy) Height() int { return f.height }

// NormalHeight returns the height the fairy was created with.
func (f *Fairy) NormalHeight() int { return f.normalHeight }

// Energy returns the current energy level.
func (f *Fairy) Energy() int { return f.energy }

// CreatedAt returns the creation time.
func (f *Fairy) CreatedAt() time.Time { return f.createdAt }

// CollectionSize returns the number of items held.
func (f *Fairy) CollectionSize() int { return len(f.items) }

// HasItem reports whether item is in the collection (exact match).
func (f *Fairy) HasItem(item string) bool {
	return slices.Contains(f.items, item)
}

// Items returns a copy of the collection in insertion order.
func (f *Fairy) Items() []string {
	return slices.Clone(f.items)
}

// State returns a snapshot of the fairy.
func (f *Fairy) State() FairyState {
	return FairyState{
		ID:           f.id,
		Name:         f.name,
		Height:       f.height,
		NormalHeight: f.normalHeight,
		Energy:       f.energy,
		Items:        f.Items(),
		CreatedAt:    f.createdAt,
	}
}

// Grab appends item to the collection. Duplicates are allowed.
func (f *Fairy) Grab(item string) error {
	if len(f.items) >= MaxItems {
		return fmt.Errorf("%w: cannot add %q, already holding %d items", ErrCapacity, item, MaxItems)
	}
	f.items = append(f.items, item)
	return nil
}

// Drop removes the first occurrence of item and returns it.
func (f *Fairy) Drop(item string) (string, error) {
	i := slices.Index(f.items, item)
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, item)
	}
	f.items = slices.Delete(f.items, i, i+1)
	return item, nil
}

// Use spends UseCost energy on an item from the collection.
func (f *Fairy) Use(item string) error {
	if !f.HasItem(item) {
		return fmt.Errorf("%w: %q", ErrNotFound, item)
	}
	return f.spend(UseCost, "use "+item)
}

// Walk moves one metre in direction, matched case-insensitively, and spends
// WalkCost energy. It returns the canonical direction.
func (f *Fairy) Walk(direction string) (Direction, error) {
	d, err := ParseDirection(direction)
	if err != nil {
		return "", err
	}
	if err := f.spend(WalkCost, "walk"); err != nil {
		return "", err
	}
	return d, nil
}

// Fly moves x metres forward and y metres up. The distance is the
// hypotenuse truncated to whole metres and costs FlyCostPerMeter each.
func (f *Fairy) Fly(x, y int) (int, error) {
	if x < 0 || y < 0 {
		return 0, fmt.Errorf("%w: distances must not be negative (x=%d, y=%d)", ErrInvalidArgument, x, y)
	}

	fx, fy := float64(x), float64(y)
	meters := math.Floor(math.Sqrt(fx*fx + fy*fy))

	// The check stays in float64: converting a huge distance to int overflows.
	if meters > float64((f.energy-MinEnergy)/FlyCostPerMeter) {
		return 0, fmt.Errorf("%w: flying %.0f m costs %d per metre, have %d", ErrInsufficientEnergy, meters, FlyCostPerMeter, f.energy)
	}
	distance := int(meters)
	f.energy -= distance * FlyCostPerMeter

	return distance, nil
}

// Shrink sets the height to MinHeight for TransformCost energy and returns
// the new height.
func (f *Fairy) Shrink() (int, error) {
	if f.height <= MinHeight {
		return f.height, fmt.Errorf("%w: cannot shrink below %d cm", ErrAlreadyAtBound, MinHeight)
	}
	if err := f.spend(TransformCost, "shrink"); err != nil {
		return f.height, err
	}
	f.height = MinHeight
	return f.height, nil
}

// Grow sets the height to MaxHeight for TransformCost energy and returns
// the new height.
func (f *Fairy) Grow() (int, error) {
	if f.height >= MaxHeight {
		return f.height, fmt.Errorf("%w: cannot grow above %d cm", ErrAlreadyAtBound, MaxHeight)
	}
	if err := f.spend(TransformCost, "grow"); err != nil {
		return f.height, err
	}
	f.height = MaxHeight
	return f.height, nil
}

// Rest restores energy to MaxEnergy.
func (f *Fairy) Rest() {
	f.energy = MaxEnergy
}

// Undo restores the height the fairy was created with.
func (f *Fairy) Undo() {
	f.height = f.normalHeight
}

// spend deducts cost unless that would take energy below MinEnergy.
func (f *Fairy) spend(cost int, action string) error {
	if f.energy-cost < MinEnergy {
		return fmt.Errorf("%w to %s: need %d, have %d", ErrInsufficientEnergy, action, cost, f.energy)
	}
	f.energy -= cost
	return nil
}
