package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/flightdesk/internal/application/handlers"
	"github.com/ersonp/flightdesk/internal/infrastructure/config"
	"github.com/ersonp/flightdesk/internal/infrastructure/logger"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize flightdesk configuration",
		Long:  "Creates a .flightdesk directory with default configuration and checks that the backend answers.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	// Environment overrides apply before the file exists.
	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	backend, err := newBackend(cfg, logger.Nop())
	if err != nil {
		return err
	}

	result, err := handlers.NewInitHandler(backend).Handle(cmd.Context(), base)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Created %s\n", result.ConfigPath)
	if result.Reachable {
		fmt.Fprintf(w, "Backend at %s is reachable\n", result.BaseURL)
	} else {
		fmt.Fprintf(w, "Backend at %s did not answer: %s\n", result.BaseURL, result.ProbeError)
	}
	fmt.Fprintln(w, "flightdesk initialized successfully!")

	return nil
}
