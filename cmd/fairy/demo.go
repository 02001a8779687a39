package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/fairy-core/internal/application/handlers"
	"github.com/ersonp/fairy-core/internal/infrastructure/config"
	"github.com/ersonp/fairy-core/internal/infrastructure/console"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Make fairies and run them through every action",
		Long: `Asks for a name and a height, creates the fairy and runs a fixed script
(grab, examine, drop, use, walk, fly, rest, shrink, undo). Examine questions
are answered on stdin with "yes" or anything else. Repeats while you answer
yes to "make another".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runDemoLoop(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), jsonMode(cfg))
		},
	}
}

// runDemoLoop drives the interactive demo until the user declines another
// fairy or input runs out. Empty answers fall back to the configured name
// and height.
func runDemoLoop(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer, asJSON bool) error {
	prompter := console.NewPrompter(in, promptWriter(out, errOut, asJSON))
	notifier := newNotifier(out, asJSON)
	handler := handlers.NewDemoHandler(notifier, prompter)

	fmt.Fprintln(promptWriter(out, errOut, asJSON), "Hello! We are going to make a fairy today.")

	for {
		name, err := prompter.ReadLine(ctx, "What is your fairy's name? ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading name: %w", err)
		}
		if strings.TrimSpace(name) == "" {
			name = cfg.Fairy.Name
		}

		height, err := readHeight(ctx, prompter, name, cfg.Fairy.Height)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err == nil {
			err = runDemoOnce(ctx, handler, name, height, out, asJSON)
		}
		// A bad height or an invalid fairy only spoils this round; the user
		// is still asked whether to make another.
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(errOut, "error: %v\n", err)
		}

		again, err := prompter.AskContinue(ctx, "Would you like to make another fairy? ")
		if err != nil {
			return fmt.Errorf("reading answer: %w", err)
		}
		if !again {
			return nil
		}
	}
}

func readHeight(ctx context.Context, prompter *console.Prompter, name string, fallback int) (int, error) {
	height, err := prompter.ReadInt(ctx, "How many cm tall is "+name+"? ", fallback)
	if err != nil && !errors.Is(err, io.EOF) && ctx.Err() == nil {
		return 0, fmt.Errorf("height must be a whole number of cm: %w", err)
	}
	return height, err
}

func runDemoOnce(ctx context.Context, handler *handlers.DemoHandler, name string, height int, out io.Writer, asJSON bool) error {
	result, err := handler.Handle(ctx, name, height)
	if err != nil {
		return err
	}

	if asJSON {
		if err := json.NewEncoder(out).Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return nil
	}

	fmt.Fprintln(out, handlers.FormatStatus(result.Fairy))
	if failed := result.Failed(); len(failed) > 0 {
		fmt.Fprintf(out, "%d of %d steps failed.\n", len(failed), len(result.Steps))
	}
	return nil
}
