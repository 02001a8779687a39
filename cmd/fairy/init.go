package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/fairy-core/internal/application/handlers"
	"github.com/ersonp/fairy-core/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	var (
		name   string
		height int
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Creates a .fairy directory with a default config.yaml in the current directory.
With --name or --height the given fairy defaults are saved instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if cmd.Flags().Changed("name") || cmd.Flags().Changed("height") {
				cfg = config.Default()
				if cmd.Flags().Changed("name") {
					cfg.Fairy.Name = name
				}
				if cmd.Flags().Changed("height") {
					cfg.Fairy.Height = height
				}
				if globalJSON {
					cfg.Output.Format = config.FormatJSON
				}
			}
			return runInit(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Default fairy name to save")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "Default fairy height in cm to save, 1-20")

	return cmd
}

func runInit(cmd *cobra.Command, cfg *config.Config) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler().Handle(cwd, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", result.ConfigPath)
	return nil
}
