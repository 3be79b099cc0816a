package handlers

import (
	"context"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/services"
)

// Direction selects which board to show.
type Direction string

const (
	Arrivals   Direction = "arrivals"
	Departures Direction = "departures"
)

// BoardQuery selects the airport for a board. AirportName filters client-side
// over every flight; AirportID asks the backend to filter. With neither set
// the board lists all flights in that direction.
type BoardQuery struct {
	AirportID   entities.ID
	AirportName string
}

// BoardResult is a rendered board.
type BoardResult struct {
	Direction Direction
	// Airport labels the board. It is nil when the board is unfiltered.
	Airport *entities.Airport
	Flights []entities.Flight
}

// BoardHandler builds arrivals and departures boards.
type BoardHandler struct {
	flights  *services.FlightService
	airports *services.AirportService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(flights *services.FlightService, airports *services.AirportService) *BoardHandler {
	return &BoardHandler{
		flights:  flights,
		airports: airports,
	}
}

// Handle builds the board for one direction.
func (h *BoardHandler) Handle(ctx context.Context, dir Direction, q BoardQuery) (*BoardResult, error) {
	result := &BoardResult{Direction: dir}
	msg := MsgFetchArrivals
	if dir == Departures {
		msg = MsgFetchDepartures
	}

	var (
		flights []entities.Flight
		err     error
	)
	switch {
	case q.AirportName != "":
		result.Airport = &entities.Airport{Name: q.AirportName}
		if dir == Departures {
			flights, err = h.flights.DeparturesAt(ctx, q.AirportName)
		} else {
			flights, err = h.flights.ArrivalsAt(ctx, q.AirportName)
		}
	case !q.AirportID.IsZero():
		result.Airport = h.label(ctx, q.AirportID)
		if dir == Departures {
			flights, err = h.flights.Departures(ctx, q.AirportID)
		} else {
			flights, err = h.flights.Arrivals(ctx, q.AirportID)
		}
	default:
		if dir == Departures {
			flights, err = h.flights.Departures(ctx)
		} else {
			flights, err = h.flights.Arrivals(ctx)
		}
	}
	if err != nil {
		return nil, fail(err, fixed(msg))
	}

	result.Flights = flights
	return result, nil
}

// label looks the airport up for the board header. A failed lookup still
// yields a header with the bare id.
func (h *BoardHandler) label(ctx context.Context, id entities.ID) *entities.Airport {
	if a, err := h.airports.Find(ctx, id); err == nil && a != nil {
		return a
	}
	return &entities.Airport{ID: id, Name: id.String()}
}
