// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/flightdesk/internal/domain/ports"
	"github.com/ersonp/flightdesk/internal/infrastructure/config"
)

// InitHandler handles workspace initialization.
type InitHandler struct {
	backend ports.AirportBackend
}

// NewInitHandler creates a new init handler. backend may be nil to skip the
// connectivity check.
func NewInitHandler(backend ports.AirportBackend) *InitHandler {
	return &InitHandler{
		backend: backend,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	BaseURL    string
	// Reachable reports whether the backend answered the airport listing.
	Reachable bool
	// ProbeError is the explanation when the backend did not answer.
	ProbeError string
}

// Handle writes the default config and checks that the backend answers.
// An unreachable backend is reported, not treated as a failure.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("flightdesk already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		BaseURL:    cfg.API.BaseURL,
	}

	if h.backend != nil {
		if _, err := h.backend.ListAirports(ctx); err != nil {
			result.ProbeError = Explain(err, MsgFetchAirports)
		} else {
			result.Reachable = true
		}
	}

	return result, nil
}
