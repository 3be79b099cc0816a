package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ersonp/flightdesk/internal/application/handlers"
)

type importFlags struct {
	format string
	dryRun bool
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import flights from JSON or CSV",
		Long: "Creates one flight per row of a structured file. CSV files need the columns " +
			"airline_name, aircraft_type, departure_airport_id, arrival_airport_id and optionally gate_id.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without sending")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	if !slices.Contains(importFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, importFormats)
	}

	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Importing %s...\n", filePath)

		result, err := d.Import.Handle(ctx, filePath, handlers.ImportOptions{
			Format: flags.format,
			DryRun: flags.dryRun,
		})
		if err != nil {
			return fmt.Errorf("importing file: %w", err)
		}

		displayImport(w, result, flags.dryRun)
		return nil
	})
}

func displayImport(w io.Writer, result *handlers.ImportResult, dryRun bool) {
	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  %s\n", e.Error())
		}
	}

	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprintf(w, "Dry run: %d of %d flights would be imported", result.Imported, result.Rows)
	} else {
		fmt.Fprintf(w, "Imported: %d of %d flights", result.Imported, result.Rows)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, ", %d errors", len(result.Errors))
	}

	fmt.Fprintln(w)
}
