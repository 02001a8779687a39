// Package handlers contains application use case handlers.
package handlers

import (
	"fmt"

	"github.com/ersonp/fairy-core/internal/infrastructure/config"
)

// InitHandler writes the default configuration file.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
}

// Handle creates .fairy/config.yaml under basePath. A nil cfg writes the
// commented default file; otherwise cfg is validated and written as is.
func (h *InitHandler) Handle(basePath string, cfg *config.Config) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("fairy already initialized in %s", basePath)
	}

	if cfg == nil {
		if err := config.WriteDefault(basePath); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
	} else {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if err := config.Write(basePath, cfg); err != nil {
			return nil, fmt.Errorf("writing config: %w", err)
		}
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
	}, nil
}
