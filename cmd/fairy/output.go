package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ersonp/fairy-core/internal/domain/ports"
	"github.com/ersonp/fairy-core/internal/infrastructure/config"
	"github.com/ersonp/fairy-core/internal/infrastructure/console"
)

// loadConfig loads the config for the current directory.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// jsonMode reports whether output should be JSON. The --json flag wins over
// the config file.
func jsonMode(cfg *config.Config) bool {
	return globalJSON || cfg.Output.Format == config.FormatJSON
}

func newNotifier(w io.Writer, asJSON bool) ports.Notifier {
	if asJSON {
		return console.NewJSONNotifier(w)
	}
	return console.NewTextNotifier(w)
}

// promptWriter returns where prompts and questions go. In JSON mode they
// move to errOut so that out carries only JSON lines.
func promptWriter(out, errOut io.Writer, asJSON bool) io.Writer {
	if asJSON {
		return errOut
	}
	return out
}
