// Package flightapi implements ports.Backend against the flight REST service.
package flightapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/ports"
	"github.com/ersonp/flightdesk/internal/infrastructure/httpapi"
)

// ErrUnexpectedShape is returned when a list endpoint replies with something
// other than a JSON array or null.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// ErrMissingID is returned when an update or delete has no identifier.
var ErrMissingID = errors.New("missing identifier")

// Backend talks to the REST service through the request client.
type Backend struct {
	client *httpapi.Client
	routes routes
}

var _ ports.Backend = (*Backend)(nil)

// New creates a Backend using the given route style.
func New(client *httpapi.Client, style RouteStyle) *Backend {
	return &Backend{client: client, routes: routesFor(style)}
}

// ListFlights fetches GET /flights.
func (b *Backend) ListFlights(ctx context.Context) ([]any, error) {
	return b.list(ctx, pathFlightList, nil)
}

// ListArrivals fetches GET /arrivals, filtered by airport when ids are given.
func (b *Backend) ListArrivals(ctx context.Context, airportIDs []entities.ID) ([]any, error) {
	return b.list(ctx, pathArrivals, airportQuery(airportIDs))
}

// ListDepartures fetches GET /departures, filtered by airport when ids are given.
func (b *Backend) ListDepartures(ctx context.Context, airportIDs []entities.ID) ([]any, error) {
	return b.list(ctx, pathDepartures, airportQuery(airportIDs))
}

// CreateFlight posts a new flight.
func (b *Backend) CreateFlight(ctx context.Context, in entities.FlightInput) (any, error) {
	return b.write(ctx, b.routes.flights, in)
}

// UpdateFlight replaces a flight.
func (b *Backend) UpdateFlight(ctx context.Context, id entities.ID, in entities.FlightInput) (any, error) {
	return b.replace(ctx, b.routes.flights, id, in)
}

// DeleteFlight removes a flight.
func (b *Backend) DeleteFlight(ctx context.Context, id entities.ID) error {
	return b.remove(ctx, b.routes.flights, id)
}

// ListGates fetches every gate.
func (b *Backend) ListGates(ctx context.Context) ([]any, error) {
	return b.list(ctx, b.routes.gates, nil)
}

// GetGate fetches a gate's detail.
func (b *Backend) GetGate(ctx context.Context, id entities.ID) (any, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("getting gate: %w", ErrMissingID)
	}
	resp, err := b.client.Get(ctx, item(b.routes.gates, id))
	if err != nil {
		return nil, fmt.Errorf("getting gate %s: %w", id, err)
	}
	return resp.Data, nil
}

// CreateGate posts a new gate.
func (b *Backend) CreateGate(ctx context.Context, in entities.GateInput) (any, error) {
	return b.write(ctx, b.routes.gates, in)
}

// UpdateGate replaces a gate.
func (b *Backend) UpdateGate(ctx context.Context, id entities.ID, in entities.GateInput) (any, error) {
	return b.replace(ctx, b.routes.gates, id, in)
}

// DeleteGate removes a gate.
func (b *Backend) DeleteGate(ctx context.Context, id entities.ID) error {
	return b.remove(ctx, b.routes.gates, id)
}

// ListAirports fetches every airport.
func (b *Backend) ListAirports(ctx context.Context) ([]any, error) {
	return b.list(ctx, b.routes.airports, nil)
}

// CreateAirport posts a new airport.
func (b *Backend) CreateAirport(ctx context.Context, in entities.AirportInput) (any, error) {
	return b.write(ctx, b.routes.airports, in)
}

// UpdateAirport replaces an airport.
func (b *Backend) UpdateAirport(ctx context.Context, id entities.ID, in entities.AirportInput) (any, error) {
	return b.replace(ctx, b.routes.airports, id, in)
}

// DeleteAirport removes an airport.
func (b *Backend) DeleteAirport(ctx context.Context, id entities.ID) error {
	return b.remove(ctx, b.routes.airports, id)
}

func (b *Backend) list(ctx context.Context, path string, q httpapi.Query) ([]any, error) {
	resp, err := b.client.Get(ctx, path, httpapi.WithQuery(q))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	switch data := resp.Data.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return data, nil
	default:
		return nil, fmt.Errorf("listing %s: %w: got %T", path, ErrUnexpectedShape, resp.Data)
	}
}

func (b *Backend) write(ctx context.Context, path string, in any) (any, error) {
	resp, err := b.client.Post(ctx, path, httpapi.JSON(in))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return resp.Data, nil
}

func (b *Backend) replace(ctx context.Context, path string, id entities.ID, in any) (any, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("updating %s: %w", path, ErrMissingID)
	}
	resp, err := b.client.Put(ctx, item(path, id), httpapi.JSON(in))
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", item(path, id), err)
	}
	return resp.Data, nil
}

func (b *Backend) remove(ctx context.Context, path string, id entities.ID) error {
	if id.IsZero() {
		return fmt.Errorf("deleting %s: %w", path, ErrMissingID)
	}
	if _, err := b.client.Delete(ctx, item(path, id), nil); err != nil {
		return fmt.Errorf("deleting %s: %w", item(path, id), err)
	}
	return nil
}

func airportQuery(ids []entities.ID) httpapi.Query {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		if !id.IsZero() {
			values = append(values, id.String())
		}
	}
	if len(values) == 0 {
		return nil
	}
	return httpapi.Query{"airportId": values}
}
