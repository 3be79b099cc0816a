// Package main provides the entry point for the flightdesk CLI application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ersonp/flightdesk/internal/application/handlers"
)

var (
	version   = "0.1.0-dev"
	globalDir string
	verbose   bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		printError(os.Stderr, err, verbose)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "flightdesk",
		Short:         "Admin console for a flight information backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalDir, "dir", "d", "", "Directory holding .flightdesk (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show the underlying cause of failures")

	rootCmd.AddCommand(
		newInitCmd(),
		newBoardCmd(handlers.Arrivals),
		newBoardCmd(handlers.Departures),
		newWatchCmd(),
		newFlightsCmd(),
		newGatesCmd(),
		newAirportsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// printError renders a failure for the terminal. Operation errors show the
// user-facing message and its explanation; the cause only with verbose.
func printError(w io.Writer, err error, verbose bool) {
	var opErr *handlers.OperationError
	if !errors.As(err, &opErr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	fmt.Fprintf(w, "error: %s\n", opErr.Message)
	if opErr.Detail != "" {
		fmt.Fprintf(w, "  %s\n", opErr.Detail)
	}
	if verbose && opErr.Err != nil {
		fmt.Fprintf(w, "  cause: %v\n", opErr.Err)
	}
}
