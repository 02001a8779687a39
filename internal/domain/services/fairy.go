// Package services contains the fairy's behaviour on top of the entity rules.
package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ersonp/fairy-core/internal/domain/entities"
	"github.com/ersonp/fairy-core/internal/domain/ports"
)

// actionOptions lists what a fairy can do, in the order shown to users.
var actionOptions = []string{
	"grab(item)",
	"drop(item)",
	"examine(item)",
	"use(item)",
	"walk(direction)",
	"fly(x, y)",
	"shrink()",
	"grow()",
	"rest()",
	"undo()",
}

// FairyService runs actions on a single fairy and reports each success
// through a Notifier. Failed actions emit nothing and return the error.
type FairyService struct {
	fairy    *entities.Fairy
	notifier ports.Notifier
	decider  ports.Decider
}

// NewFairyService creates a service for fairy. The decider is only needed
// by Examine and may be nil otherwise.
func NewFairyService(fairy *entities.Fairy, notifier ports.Notifier, decider ports.Decider) *FairyService {
	return &FairyService{
		fairy:    fairy,
		notifier: notifier,
		decider:  decider,
	}
}

// Fairy returns the underlying fairy.
func (s *FairyService) Fairy() *entities.Fairy {
	return s.fairy
}

// Options returns the list of available actions.
func (s *FairyService) Options() []string {
	out := make([]string, len(actionOptions))
	copy(out, actionOptions)
	return out
}

// ShowOptions notifies the list of available actions.
func (s *FairyService) ShowOptions() {
	s.notifier.Notify("Actions your fairy can take:")
	for _, opt := range actionOptions {
		s.notifier.Notify(" + " + opt)
	}
}

// Collection notifies every item in the collection, one per notice, and
// returns them.
func (s *FairyService) Collection() []string {
	items := s.fairy.Items()
	for _, item := range items {
		s.notifier.Notify(item)
	}
	return items
}

// Grab adds item to the collection.
func (s *FairyService) Grab(item string) error {
	if err := s.fairy.Grab(item); err != nil {
		return err
	}
	s.notifier.Notify("You have added " + item + " to your collection!")
	return nil
}

// Drop removes item from the collection and returns it.
func (s *FairyService) Drop(item string) (string, error) {
	removed, err := s.fairy.Drop(item)
	if err != nil {
		return "", err
	}
	s.notifier.Notify("You have removed " + removed + " from your collection.")
	return removed, nil
}

// Examine asks the decider whether item should be collected and grabs it on
// a yes. It reports whether the item was added.
func (s *FairyService) Examine(ctx context.Context, item string) (bool, error) {
	if s.decider == nil {
		return false, fmt.Errorf("examining %s: no decider configured", item)
	}

	ok, err := s.decider.Confirm(ctx, "Do you want to add "+item+" to your collection?")
	if err != nil {
		return false, fmt.Errorf("examining %s: %w", item, err)
	}
	if !ok {
		s.notifier.Notify("OK! " + item + " will not be added to your collection.")
		return false, nil
	}

	if err := s.Grab(item); err != nil {
		return false, err
	}
	return true, nil
}

// Use spends energy on an item from the collection.
func (s *FairyService) Use(item string) error {
	if err := s.fairy.Use(item); err != nil {
		return err
	}
	s.notifier.Notify("You successfully used " + item + ".")
	return nil
}

// Walk moves one metre in direction.
func (s *FairyService) Walk(direction string) error {
	if _, err := s.fairy.Walk(direction); err != nil {
		return err
	}
	s.notifier.Notify("You have walked 1 m " + direction)
	return nil
}

// Fly flies x metres forward and y metres up and returns the distance.
func (s *FairyService) Fly(x, y int) (int, error) {
	distance, err := s.fairy.Fly(x, y)
	if err != nil {
		return 0, err
	}
	s.notifier.Notify(fmt.Sprintf("You have flown %d m forward and %d m up, a total of %d m.", x, y, distance))
	return distance, nil
}

// Shrink shrinks the fairy to the minimum height.
func (s *FairyService) Shrink() (int, error) {
	h, err := s.fairy.Shrink()
	if err != nil {
		return h, err
	}
	s.notifier.Notify("You have shrunk to " + strconv.Itoa(h) + " cm.")
	return h, nil
}

// Grow grows the fairy to the maximum height.
func (s *FairyService) Grow() (int, error) {
	h, err := s.fairy.Grow()
	if err != nil {
		return h, err
	}
	s.notifier.Notify("You have grown to " + strconv.Itoa(h) + " cm.")
	return h, nil
}

// Rest restores full energy.
func (s *FairyService) Rest() {
	s.fairy.Rest()
	s.notifier.Notify("You have rested. Energy is back to " + strconv.Itoa(s.fairy.Energy()) + ".")
}

// Undo restores the fairy's normal height.
func (s *FairyService) Undo() {
	s.fairy.Undo()
	s.notifier.Notify("You are back to your normal height of " + strconv.Itoa(s.fairy.Height()) + " cm.")
}
