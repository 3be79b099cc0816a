package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/flightdesk/internal/application/handlers"
	"github.com/ersonp/flightdesk/internal/domain/entities"
)

type flightFlags struct {
	airline   string
	aircraft  string
	departure string
	arrival   string
	gate      string
}

func newFlightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Manage flights",
		Long:  "Lists, creates, updates, deletes, exports and imports flights.",
	}

	cmd.AddCommand(
		newFlightsListCmd(),
		newFlightsCreateCmd(),
		newFlightsUpdateCmd(),
		newFlightsDeleteCmd(),
		newExportCmd(),
		newImportCmd(),
	)

	return cmd
}

func newFlightsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all flights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				flights, err := d.Flights.HandleList(cmd.Context())
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(flights) == 0 {
					fmt.Fprintln(w, "No flights found.")
					return nil
				}

				fmt.Fprintf(w, "Showing %d flights:\n\n", len(flights))
				writeFlightTable(w, flights)
				return nil
			})
		},
	}
}

func addFlightFlags(cmd *cobra.Command, flags *flightFlags) {
	cmd.Flags().StringVar(&flags.airline, "airline", "", "Airline name")
	cmd.Flags().StringVar(&flags.aircraft, "aircraft", "", "Aircraft type")
	cmd.Flags().StringVar(&flags.departure, "from", "", "Departure airport id")
	cmd.Flags().StringVar(&flags.arrival, "to", "", "Arrival airport id")
	cmd.Flags().StringVar(&flags.gate, "gate", "", "Gate id (empty for no gate)")
}

func newFlightsCreateCmd() *cobra.Command {
	var flags flightFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a flight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				id, err := d.Flights.HandleCreate(cmd.Context(), flags.input())
				if err != nil {
					return err
				}
				printCreated(cmd, "flight", id)
				return nil
			})
		},
	}

	addFlightFlags(cmd, &flags)

	return cmd
}

func (f flightFlags) input() entities.FlightInput {
	in := entities.FlightInput{
		Aircraft:         entities.Aircraft{AirlineName: f.airline, Type: f.aircraft},
		DepartureAirport: entities.Ref{ID: entities.ParseID(f.departure)},
		ArrivalAirport:   entities.Ref{ID: entities.ParseID(f.arrival)},
	}
	if gate := entities.ParseID(f.gate); !gate.IsZero() {
		in.Gate = &entities.Ref{ID: gate}
	}
	return in
}

func newFlightsUpdateCmd() *cobra.Command {
	var flags flightFlags

	cmd := &cobra.Command{
		Use:   "update <flight-id>",
		Short: "Update a flight",
		Long:  "Updates a flight. Only the flags given are changed; --gate \"\" removes the gate.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := entities.ParseID(args[0])
			patch := flags.patch(cmd)

			return withDeps(func(d *Deps) error {
				if err := d.Flights.HandleUpdate(cmd.Context(), id, patch); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated flight %s\n", id)
				return nil
			})
		},
	}

	addFlightFlags(cmd, &flags)

	return cmd
}

// patch keeps only the flags set on the command line.
func (f flightFlags) patch(cmd *cobra.Command) handlers.FlightPatch {
	var patch handlers.FlightPatch
	changed := cmd.Flags().Changed

	if changed("airline") {
		patch.AirlineName = &f.airline
	}
	if changed("aircraft") {
		patch.AircraftType = &f.aircraft
	}
	if changed("from") {
		patch.DepartureAirportID = idPtr(f.departure)
	}
	if changed("to") {
		patch.ArrivalAirportID = idPtr(f.arrival)
	}
	if changed("gate") {
		patch.GateID = idPtr(f.gate)
	}

	return patch
}

func newFlightsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <flight-id>...",
		Short: "Delete flights",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				for _, arg := range args {
					id := entities.ParseID(arg)
					if err := d.Flights.HandleDelete(cmd.Context(), id); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted flight %s\n", id)
				}
				return nil
			})
		},
	}
}

func idPtr(s string) *entities.ID {
	id := entities.ParseID(s)
	return &id
}

func printCreated(cmd *cobra.Command, kind string, id entities.ID) {
	if id.IsZero() {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", kind)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s\n", kind, id)
}
