package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ersonp/fairy-core/internal/domain/entities"
	"github.com/ersonp/fairy-core/internal/domain/ports"
	"github.com/ersonp/fairy-core/internal/domain/services"
)

// DemoHandler runs the scripted tour of everything a fairy can do.
type DemoHandler struct {
	notifier ports.Notifier
	decider  ports.Decider
}

// NewDemoHandler creates a demo handler. The decider answers the examine
// questions.
func NewDemoHandler(notifier ports.Notifier, decider ports.Decider) *DemoHandler {
	return &DemoHandler{
		notifier: notifier,
		decider:  decider,
	}
}

// DemoStep records the outcome of one scripted action.
type DemoStep struct {
	Action string `json:"action"`
	Error  string `json:"error,omitempty"`
	Err    error  `json:"-"`
}

// DemoResult contains the result of a demo run.
type DemoResult struct {
	Fairy          entities.FairyState `json:"fairy"`
	Steps          []DemoStep          `json:"steps"`
	ShrunkHeight   int                 `json:"shrunk_height"`
	RestoredHeight int                 `json:"restored_height"`
}

// Failed returns the steps that returned an error.
func (r *DemoResult) Failed() []DemoStep {
	var failed []DemoStep
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Handle creates a fairy and runs the script on it. A failing step is
// reported through the notifier and the script carries on; only an invalid
// fairy or a canceled context stops the run.
func (h *DemoHandler) Handle(ctx context.Context, name string, height int) (*DemoResult, error) {
	fairy, err := entities.NewFairy(entities.WithName(name), entities.WithHeight(height))
	if err != nil {
		return nil, fmt.Errorf("creating fairy: %w", err)
	}

	svc := services.NewFairyService(fairy, h.notifier, h.decider)
	result := &DemoResult{}

	script := []struct {
		action string
		run    func() error
	}{
		{"options", func() error { svc.ShowOptions(); return nil }},
		{"grab Acorn", func() error { return svc.Grab("Acorn") }},
		{"examine Pinecone", func() error { _, err := svc.Examine(ctx, "Pinecone"); return err }},
		{"examine Snail", func() error { _, err := svc.Examine(ctx, "Snail"); return err }},
		{"grab Leaf", func() error { return svc.Grab("Leaf") }},
		{"drop Acorn", func() error { _, err := svc.Drop("Acorn"); return err }},
		{"items", func() error { svc.Collection(); return nil }},
		{"use Leaf", func() error { return svc.Use("Leaf") }},
		{"walk right", func() error { return svc.Walk("right") }},
		{"walk straight", func() error { return svc.Walk("straight") }},
		{"walk straight", func() error { return svc.Walk("straight") }},
		{"fly 10 10", func() error { _, err := svc.Fly(10, 10); return err }},
		{"rest", func() error { svc.Rest(); return nil }},
		{"shrink", func() error {
			_, err := svc.Shrink()
			result.ShrunkHeight = fairy.Height()
			h.notifier.Notify(strconv.Itoa(result.ShrunkHeight))
			return err
		}},
		{"undo", func() error {
			svc.Undo()
			result.RestoredHeight = fairy.Height()
			h.notifier.Notify(strconv.Itoa(result.RestoredHeight))
			return nil
		}},
	}

	for _, step := range script {
		err := step.run()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		rec := DemoStep{Action: step.action, Err: err}
		if err != nil {
			rec.Error = err.Error()
			h.notifier.Notify("Error! " + rec.Error)
		}
		result.Steps = append(result.Steps, rec)
	}

	result.Fairy = fairy.State()
	return result, nil
}
