package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/fairy-core/internal/application/handlers"
	"github.com/ersonp/fairy-core/internal/domain/entities"
	"github.com/ersonp/fairy-core/internal/domain/services"
	"github.com/ersonp/fairy-core/internal/infrastructure/console"
)

const playPrompt = "> "

func newPlayCmd() *cobra.Command {
	var (
		name   string
		height int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Control a fairy one action per line",
		Long: `Reads actions from stdin, one per line, and applies them to a single fairy:

  grab <item>, drop <item>, examine <item>, use <item>, has <item>,
  walk <direction>, fly <x> <y>, shrink, grow, rest, undo,
  name <text>, status, items, options, quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				name = cfg.Fairy.Name
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Fairy.Height
			}
			return runPlay(cmd.Context(), name, height, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), jsonMode(cfg))
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Fairy name (default from config)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "Fairy height in cm, 1-20 (default from config)")

	return cmd
}

// runPlay reads commands until quit or end of input. Command errors are
// reported and the session continues.
func runPlay(ctx context.Context, name string, height int, in io.Reader, out, errOut io.Writer, asJSON bool) error {
	fairy, err := entities.NewFairy(entities.WithName(name), entities.WithHeight(height))
	if err != nil {
		return fmt.Errorf("creating fairy: %w", err)
	}

	prompter := console.NewPrompter(in, promptWriter(out, errOut, asJSON))
	notifier := newNotifier(out, asJSON)
	svc := services.NewFairyService(fairy, notifier, prompter)
	handler := handlers.NewCommandHandler(svc, notifier)

	for {
		line, err := prompter.ReadLine(ctx, playPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := handler.Handle(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}
