package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/flightdesk/internal/application/handlers"
	"github.com/ersonp/flightdesk/internal/domain/entities"
)

type boardFlags struct {
	airportID   string
	airportName string
	all         bool
}

var boardTitles = map[handlers.Direction]string{
	handlers.Arrivals:   "Arrivals",
	handlers.Departures: "Departures",
}

func newBoardCmd(dir handlers.Direction) *cobra.Command {
	var flags boardFlags

	cmd := &cobra.Command{
		Use:   string(dir),
		Short: fmt.Sprintf("Show the %s board", dir),
		Long: fmt.Sprintf("Shows %s for an airport. Without flags the remembered airport is used; "+
			"when none is remembered the first airport is picked and remembered.", dir),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, dir, flags)
		},
	}

	addBoardFlags(cmd, &flags)

	return cmd
}

func addBoardFlags(cmd *cobra.Command, flags *boardFlags) {
	cmd.Flags().StringVar(&flags.airportID, "airport-id", "", "Airport id, filtered by the backend")
	cmd.Flags().StringVar(&flags.airportName, "airport-name", "", "Airport name, matched against every flight")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Show every flight regardless of airport")
	cmd.MarkFlagsMutuallyExclusive("airport-id", "airport-name", "all")
}

func runBoard(cmd *cobra.Command, dir handlers.Direction, flags boardFlags) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		q, err := d.boardQuery(ctx, flags)
		if err != nil {
			return err
		}

		result, err := d.Board.Handle(ctx, dir, q)
		if err != nil {
			return err
		}

		displayBoard(cmd.OutOrStdout(), result)
		return nil
	})
}

// boardQuery resolves which airport a board shows. Explicit flags win, then
// the remembered airport, then the first airport the backend lists, which is
// remembered for next time.
func (d *Deps) boardQuery(ctx context.Context, flags boardFlags) (handlers.BoardQuery, error) {
	switch {
	case flags.all:
		return handlers.BoardQuery{}, nil
	case flags.airportName != "":
		return handlers.BoardQuery{AirportName: flags.airportName}, nil
	case flags.airportID != "":
		return handlers.BoardQuery{AirportID: entities.ParseID(flags.airportID)}, nil
	case !d.State.Airport.ID.IsZero():
		return handlers.BoardQuery{AirportID: d.State.Airport.ID}, nil
	}

	airport, err := d.Airports.HandleSelect(ctx, entities.ID{})
	if err != nil {
		return handlers.BoardQuery{}, err
	}
	if airport == nil {
		return handlers.BoardQuery{}, nil
	}

	d.State.SetAirport(*airport)
	if err := d.saveState(); err != nil {
		return handlers.BoardQuery{}, err
	}

	return handlers.BoardQuery{AirportID: airport.ID}, nil
}

func displayBoard(w io.Writer, result *handlers.BoardResult) {
	title := boardTitles[result.Direction]
	if result.Airport != nil {
		title += ": " + result.Airport.Label()
	}
	fmt.Fprintln(w, title)

	if len(result.Flights) == 0 {
		fmt.Fprintln(w, "No flights found.")
		return
	}

	writeFlightTable(w, result.Flights)
}
