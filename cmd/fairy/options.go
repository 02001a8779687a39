package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/fairy-core/internal/domain/entities"
	"github.com/ersonp/fairy-core/internal/domain/services"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the actions a fairy can take",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runOptions(cmd, jsonMode(cfg))
		},
	}
}

// optionsOutput is the --json form of the options listing.
type optionsOutput struct {
	Actions    []string             `json:"actions"`
	Directions []entities.Direction `json:"directions"`
}

func runOptions(cmd *cobra.Command, asJSON bool) error {
	fairy, err := entities.NewFairy()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	svc := services.NewFairyService(fairy, newNotifier(out, asJSON), nil)

	if asJSON {
		result := optionsOutput{
			Actions:    svc.Options(),
			Directions: entities.AllDirections(),
		}
		if err := json.NewEncoder(out).Encode(result); err != nil {
			return fmt.Errorf("encoding options: %w", err)
		}
		return nil
	}

	svc.ShowOptions()

	dirs := entities.AllDirections()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	fmt.Fprintln(out, "Directions: "+strings.Join(names, ", "))

	return nil
}
