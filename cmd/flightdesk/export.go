package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

type exportFlags struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export flights to file",
		Long:  "Exports the normalized flight list to JSON, CSV, or markdown format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withDeps(func(d *Deps) error {
		flights, err := d.Flights.HandleList(cmd.Context())
		if err != nil {
			return err
		}

		if len(flights) == 0 {
			return errors.New("no flights found to export")
		}

		return writeExport(cmd.OutOrStdout(), flags, flights)
	})
}

func writeExport(stdout io.Writer, flags exportFlags, flights []entities.Flight) (err error) {
	w := stdout
	if flags.output != "" {
		f, openErr := os.OpenFile(flags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if openErr != nil {
			return fmt.Errorf("creating file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := formatFlights(w, flags.format, flights); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if flags.output != "" {
		fmt.Fprintf(stdout, "Exported %d flights to %s\n", len(flights), flags.output)
	}

	return nil
}

func formatFlights(w io.Writer, format string, flights []entities.Flight) error {
	switch format {
	case "json":
		return formatJSON(w, flights)
	case "csv":
		return formatCSV(w, flights)
	case "markdown":
		return formatMarkdown(w, flights)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatJSON(w io.Writer, flights []entities.Flight) error {
	if flights == nil {
		flights = []entities.Flight{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(flights)
}

// flightRow is the flat CSV shape of an exported flight.
type flightRow struct {
	ID               entities.ID `csv:"id"`
	AirlineName      string      `csv:"airline_name"`
	AircraftType     string      `csv:"aircraft_type"`
	DepartureAirport string      `csv:"departure_airport"`
	ArrivalAirport   string      `csv:"arrival_airport"`
	Gate             string      `csv:"gate"`
	Status           string      `csv:"status"`
}

func formatCSV(w io.Writer, flights []entities.Flight) error {
	rows := make([]flightRow, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, flightRow{
			ID:               f.ID,
			AirlineName:      f.Aircraft.AirlineName,
			AircraftType:     f.Aircraft.Type,
			DepartureAirport: f.DepartureAirport.Name,
			ArrivalAirport:   f.ArrivalAirport.Name,
			Gate:             f.Gate.Code,
			Status:           f.Status,
		})
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding csv: %w", err)
	}

	_, err = w.Write(data)
	return err
}

func formatMarkdown(w io.Writer, flights []entities.Flight) error {
	if _, err := fmt.Fprintf(w, "# Exported Flights\n\nTotal: %d flights\n\n", len(flights)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Airline | Aircraft | From | To | Gate | Status |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|---------|----------|------|----|------|--------|\n"); err != nil {
		return err
	}

	for _, f := range flights {
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			escapeMarkdown(f.Aircraft.AirlineName),
			escapeMarkdown(f.Aircraft.Type),
			escapeMarkdown(f.DepartureAirport.Name),
			escapeMarkdown(f.ArrivalAirport.Name),
			escapeMarkdown(f.Gate.Code),
			escapeMarkdown(f.Status),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
