// Package main provides the entry point for the fairy CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	globalJSON bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "fairy",
		Short:        "Create a fairy and make it walk, fly, shrink and collect things",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globalJSON, "json", false, "Write notices as JSON lines")

	rootCmd.AddCommand(
		newInitCmd(),
		newOptionsCmd(),
		newDemoCmd(),
		newPlayCmd(),
	)

	return rootCmd
}
