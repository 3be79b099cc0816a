package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

type airportFlags struct {
	name string
	code string
}

func newAirportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "airports",
		Short: "Manage airports",
		Long:  "Lists, creates, updates and deletes airports, and picks the airport boards show by default.",
	}

	cmd.AddCommand(
		newAirportsListCmd(),
		newAirportsCreateCmd(),
		newAirportsUpdateCmd(),
		newAirportsDeleteCmd(),
		newAirportsUseCmd(),
	)

	return cmd
}

func newAirportsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all airports",
		Long:  "Lists all airports. The airport boards show by default is marked with *.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				airports, err := d.Airports.HandleList(cmd.Context())
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(airports) == 0 {
					fmt.Fprintln(w, "No airports found.")
					return nil
				}

				writeAirportTable(w, airports, d.State.Airport.ID)
				return nil
			})
		},
	}
}

func addAirportFlags(cmd *cobra.Command, flags *airportFlags) {
	cmd.Flags().StringVar(&flags.name, "name", "", "Airport name")
	cmd.Flags().StringVar(&flags.code, "code", "", "Airport code, such as YYT")
}

func newAirportsCreateCmd() *cobra.Command {
	var flags airportFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an airport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := entities.AirportInput{Name: flags.name, Code: flags.code}

			return withDeps(func(d *Deps) error {
				id, err := d.Airports.HandleCreate(cmd.Context(), in)
				if err != nil {
					return err
				}
				printCreated(cmd, "airport", id)
				return nil
			})
		},
	}

	addAirportFlags(cmd, &flags)

	return cmd
}

func newAirportsUpdateCmd() *cobra.Command {
	var flags airportFlags

	cmd := &cobra.Command{
		Use:   "update <airport-id>",
		Short: "Update an airport",
		Long:  "Updates an airport. Only the flags given are changed; --code \"\" clears the code.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := entities.ParseID(args[0])

			var name, code *string
			if cmd.Flags().Changed("name") {
				name = &flags.name
			}
			if cmd.Flags().Changed("code") {
				code = &flags.code
			}

			return withDeps(func(d *Deps) error {
				if err := d.updateAirport(cmd.Context(), id, name, code); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated airport %s\n", id)
				return nil
			})
		},
	}

	addAirportFlags(cmd, &flags)

	return cmd
}

// updateAirport applies the given fields over the airport's current values.
// The remembered label follows when the default airport is renamed.
func (d *Deps) updateAirport(ctx context.Context, id entities.ID, name, code *string) error {
	current, err := d.Airports.HandleSelect(ctx, id)
	if err != nil {
		return err
	}

	in := entities.AirportInput{Name: current.Name, Code: current.Code}
	if name != nil {
		in.Name = *name
	}
	if code != nil {
		in.Code = *code
	}

	if err := d.Airports.HandleUpdate(ctx, id, in); err != nil {
		return err
	}

	if !d.State.Airport.ID.Equal(id) {
		return nil
	}
	updated, err := d.Airports.HandleSelect(ctx, id)
	if err != nil {
		return fmt.Errorf("refreshing default airport: %w", err)
	}
	d.State.SetAirport(*updated)
	return d.saveState()
}

func newAirportsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <airport-id>",
		Short: "Delete an airport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := entities.ParseID(args[0])

			return withDeps(func(d *Deps) error {
				if err := d.deleteAirport(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted airport %s\n", id)
				return nil
			})
		},
	}
}

// deleteAirport deletes an airport and forgets it if it was the default.
func (d *Deps) deleteAirport(ctx context.Context, id entities.ID) error {
	if err := d.Airports.HandleDelete(ctx, id); err != nil {
		return err
	}

	if !d.State.Airport.ID.Equal(id) {
		return nil
	}
	d.State.ClearAirport()
	return d.saveState()
}

func newAirportsUseCmd() *cobra.Command {
	var clearDefault bool

	cmd := &cobra.Command{
		Use:   "use [airport-id]",
		Short: "Set the airport boards show by default",
		Long:  "Remembers an airport for arrivals, departures and watch. With --clear the first listed airport is used again.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearDefault == (len(args) == 1) {
				return errors.New("give an airport id or --clear")
			}

			return withDeps(func(d *Deps) error {
				if clearDefault {
					d.State.ClearAirport()
					if err := d.saveState(); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Cleared the default airport")
					return nil
				}

				airport, err := d.useAirport(cmd.Context(), entities.ParseID(args[0]))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Boards now show %s\n", airport.Label())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&clearDefault, "clear", false, "Forget the default airport")

	return cmd
}

// useAirport remembers a listed airport as the board default.
func (d *Deps) useAirport(ctx context.Context, id entities.ID) (*entities.Airport, error) {
	if id.IsZero() {
		return nil, errors.New("airport id is required")
	}

	airport, err := d.Airports.HandleSelect(ctx, id)
	if err != nil {
		return nil, err
	}

	d.State.SetAirport(*airport)
	if err := d.saveState(); err != nil {
		return nil, err
	}
	return airport, nil
}

func (d *Deps) saveState() error {
	if err := d.State.Save(d.BasePath); err != nil {
		return fmt.Errorf("remembering airport: %w", err)
	}
	return nil
}
