package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/flightdesk/internal/application/handlers"
	"github.com/ersonp/flightdesk/internal/domain/ports"
	"github.com/ersonp/flightdesk/internal/domain/services"
	"github.com/ersonp/flightdesk/internal/infrastructure/config"
	"github.com/ersonp/flightdesk/internal/infrastructure/flightapi"
	"github.com/ersonp/flightdesk/internal/infrastructure/httpapi"
	"github.com/ersonp/flightdesk/internal/infrastructure/logger"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and the backend are internal.
type Deps struct {
	BasePath string
	Config   *config.Config
	State    *config.State
	Logger   *zap.Logger

	Board    *handlers.BoardHandler
	Flights  *handlers.FlightHandler
	Gates    *handlers.GateHandler
	Airports *handlers.AirportHandler
	Import   *handlers.ImportHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
func withDeps(fn func(*Deps) error) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	state, err := config.LoadState(base)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Development: cfg.Development()})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	backend, err := newBackend(cfg, log)
	if err != nil {
		return err
	}

	deps := newDeps(backend)
	deps.BasePath = base
	deps.Config = cfg
	deps.State = state
	deps.Logger = log

	return fn(deps)
}

// newDeps wires services and handlers over a backend.
func newDeps(backend ports.Backend) *Deps {
	flights := services.NewFlightService(backend)
	gates := services.NewGateService(backend)
	airports := services.NewAirportService(backend)

	return &Deps{
		Config:   config.Default(),
		State:    &config.State{},
		Logger:   logger.Nop(),
		Board:    handlers.NewBoardHandler(flights, airports),
		Flights:  handlers.NewFlightHandler(flights, airports, gates),
		Gates:    handlers.NewGateHandler(gates),
		Airports: handlers.NewAirportHandler(airports),
		Import:   handlers.NewImportHandler(services.NewImportService(backend)),
	}
}

// newBackend builds the REST adapter from config.
func newBackend(cfg *config.Config, log *zap.Logger) (*flightapi.Backend, error) {
	style, err := flightapi.ParseRouteStyle(cfg.API.RouteStyle)
	if err != nil {
		return nil, fmt.Errorf("configuring backend: %w", err)
	}

	client := httpapi.New(httpapi.Config{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		Diagnostics: cfg.Development(),
	}, httpapi.WithLogger(log))

	return flightapi.New(client, style), nil
}

func basePath() (string, error) {
	if globalDir != "" {
		return globalDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
