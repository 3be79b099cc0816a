// Package ports defines the interfaces the domain services depend on.
package ports

import (
	"context"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

// Backend is the remote flight-information service. List and detail calls
// return the decoded JSON payload as received so the services can normalize
// it; writes return the backend's reply, which may be nil for 204 responses.
type Backend interface {
	FlightBackend
	GateBackend
	AirportBackend
}

// FlightBackend defines flight operations.
type FlightBackend interface {
	// ListFlights returns every flight.
	ListFlights(ctx context.Context) ([]any, error)

	// ListArrivals returns flights arriving at any of the given airports.
	// An empty list asks for all arrivals.
	ListArrivals(ctx context.Context, airportIDs []entities.ID) ([]any, error)

	// ListDepartures returns flights departing from any of the given airports.
	ListDepartures(ctx context.Context, airportIDs []entities.ID) ([]any, error)

	CreateFlight(ctx context.Context, in entities.FlightInput) (any, error)
	UpdateFlight(ctx context.Context, id entities.ID, in entities.FlightInput) (any, error)
	DeleteFlight(ctx context.Context, id entities.ID) error
}

// GateBackend defines gate operations.
type GateBackend interface {
	ListGates(ctx context.Context) ([]any, error)

	// GetGate returns the gate detail, including its airport reference.
	GetGate(ctx context.Context, id entities.ID) (any, error)

	CreateGate(ctx context.Context, in entities.GateInput) (any, error)
	UpdateGate(ctx context.Context, id entities.ID, in entities.GateInput) (any, error)
	DeleteGate(ctx context.Context, id entities.ID) error
}

// AirportBackend defines airport operations.
type AirportBackend interface {
	ListAirports(ctx context.Context) ([]any, error)
	CreateAirport(ctx context.Context, in entities.AirportInput) (any, error)
	UpdateAirport(ctx context.Context, id entities.ID, in entities.AirportInput) (any, error)
	DeleteAirport(ctx context.Context, id entities.ID) error
}
