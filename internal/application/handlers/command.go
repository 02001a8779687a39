package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ersonp/fairy-core/internal/domain/entities"
	"github.com/ersonp/fairy-core/internal/domain/ports"
	"github.com/ersonp/fairy-core/internal/domain/services"
)

var (
	// ErrUnknownCommand is returned for a verb the shell does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command has the wrong arguments.
	ErrUsage = errors.New("usage")
)

// commandUsage maps each shell verb to its argument synopsis.
var commandUsage = map[string]string{
	"grab":    "grab <item>",
	"drop":    "drop <item>",
	"examine": "examine <item>",
	"use":     "use <item>",
	"has":     "has <item>",
	"walk":    "walk <direction>",
	"fly":     "fly <x> <y>",
	"name":    "name <text>",
}

// CommandHandler interprets shell lines such as "walk north" or "fly 3 4"
// against a single fairy.
type CommandHandler struct {
	svc      *services.FairyService
	notifier ports.Notifier
}

// NewCommandHandler creates a command handler driving svc. Results that are
// not action notices (status, has) are written to notifier.
func NewCommandHandler(svc *services.FairyService, notifier ports.Notifier) *CommandHandler {
	return &CommandHandler{
		svc:      svc,
		notifier: notifier,
	}
}

// Handle runs one line. It returns quit=true for "quit" or "exit".
// Blank lines are ignored. Item arguments keep their inner spaces.
func (h *CommandHandler) Handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]
	rest := strings.Join(args, " ")

	switch verb {
	case "quit", "exit":
		return true, nil
	case "options", "help":
		h.svc.ShowOptions()
	case "status":
		h.notifier.Notify(FormatStatus(h.svc.Fairy().State()))
	case "items":
		if len(h.svc.Collection()) == 0 {
			h.notifier.Notify("Your collection is empty.")
		}
	case "shrink":
		_, err := h.svc.Shrink()
		return false, err
	case "grow":
		_, err := h.svc.Grow()
		return false, err
	case "rest":
		h.svc.Rest()
	case "undo":
		h.svc.Undo()
	case "grab", "drop", "examine", "use", "has", "walk", "name":
		if rest == "" {
			return false, usageError(verb)
		}
		return false, h.handleWithArgument(ctx, verb, rest)
	case "fly":
		if len(args) != 2 {
			return false, usageError(verb)
		}
		x, errX := strconv.Atoi(args[0])
		y, errY := strconv.Atoi(args[1])
		if errX != nil || errY != nil {
			return false, usageError(verb)
		}
		_, err := h.svc.Fly(x, y)
		return false, err
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	return false, nil
}

func (h *CommandHandler) handleWithArgument(ctx context.Context, verb, arg string) error {
	switch verb {
	case "grab":
		return h.svc.Grab(arg)
	case "drop":
		_, err := h.svc.Drop(arg)
		return err
	case "examine":
		_, err := h.svc.Examine(ctx, arg)
		return err
	case "use":
		return h.svc.Use(arg)
	case "walk":
		return h.svc.Walk(arg)
	case "has":
		if h.svc.Fairy().HasItem(arg) {
			h.notifier.Notify("Yes, " + arg + " is in your collection.")
		} else {
			h.notifier.Notify("No, " + arg + " is not in your collection.")
		}
	case "name":
		h.svc.Fairy().SetName(arg)
		h.notifier.Notify("Your fairy is now called " + arg + ".")
	}
	return nil
}

func usageError(verb string) error {
	return fmt.Errorf("%w: %s", ErrUsage, commandUsage[verb])
}

// FormatStatus renders a one-line summary of a fairy.
func FormatStatus(s entities.FairyState) string {
	return fmt.Sprintf("%s: %d cm (normal %d cm), energy %d/%d, %d/%d items",
		s.Name, s.Height, s.NormalHeight, s.Energy, entities.MaxEnergy, len(s.Items), entities.MaxItems)
}
