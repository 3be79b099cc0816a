// Package services holds the flight-desk use cases: validation before writes
// and normalization of everything fetched.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/normalize"
	"github.com/ersonp/flightdesk/internal/domain/ports"
)

// FlightService manages flights and boards.
type FlightService struct {
	backend ports.FlightBackend
}

// NewFlightService creates a new FlightService.
func NewFlightService(backend ports.FlightBackend) *FlightService {
	return &FlightService{backend: backend}
}

// List returns every addressable flight.
func (s *FlightService) List(ctx context.Context) ([]entities.Flight, error) {
	raw, err := s.backend.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing flights: %w", err)
	}
	return addressableFlights(raw), nil
}

// Arrivals returns flights arriving at any of the given airports, filtered by
// the backend. No ids means every arrival.
func (s *FlightService) Arrivals(ctx context.Context, airportIDs ...entities.ID) ([]entities.Flight, error) {
	raw, err := s.backend.ListArrivals(ctx, airportIDs)
	if err != nil {
		return nil, fmt.Errorf("listing arrivals: %w", err)
	}
	return addressableFlights(raw), nil
}

// Departures returns flights departing from any of the given airports.
func (s *FlightService) Departures(ctx context.Context, airportIDs ...entities.ID) ([]entities.Flight, error) {
	raw, err := s.backend.ListDepartures(ctx, airportIDs)
	if err != nil {
		return nil, fmt.Errorf("listing departures: %w", err)
	}
	return addressableFlights(raw), nil
}

// ArrivalsAt filters the full flight list by arrival airport name.
func (s *FlightService) ArrivalsAt(ctx context.Context, airportName string) ([]entities.Flight, error) {
	return s.filter(ctx, func(f entities.Flight) bool {
		return f.ArrivalAirport.Name == airportName
	})
}

// DeparturesAt filters the full flight list by departure airport name.
func (s *FlightService) DeparturesAt(ctx context.Context, airportName string) ([]entities.Flight, error) {
	return s.filter(ctx, func(f entities.Flight) bool {
		return f.DepartureAirport.Name == airportName
	})
}

func (s *FlightService) filter(ctx context.Context, keep func(entities.Flight) bool) ([]entities.Flight, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Flight, 0, len(all))
	for _, f := range all {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

// Get returns the flight with the given id, or nil when it is not listed.
func (s *FlightService) Get(ctx context.Context, id entities.ID) (*entities.Flight, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID.Equal(id) {
			return &all[i], nil
		}
	}
	return nil, nil
}

// Create validates and posts a flight. The returned id is empty when the
// backend does not echo the created record.
func (s *FlightService) Create(ctx context.Context, in entities.FlightInput) (entities.ID, error) {
	in = cleanFlight(in)
	if err := ValidateFlight(in); err != nil {
		return entities.ID{}, err
	}
	reply, err := s.backend.CreateFlight(ctx, in)
	if err != nil {
		return entities.ID{}, fmt.Errorf("creating flight: %w", err)
	}
	created, _ := normalize.Flight(reply)
	return created.ID, nil
}

// Update validates and replaces a flight.
func (s *FlightService) Update(ctx context.Context, id entities.ID, in entities.FlightInput) error {
	if id.IsZero() {
		return ErrIDRequired
	}
	in = cleanFlight(in)
	if err := ValidateFlight(in); err != nil {
		return err
	}
	if _, err := s.backend.UpdateFlight(ctx, id, in); err != nil {
		return fmt.Errorf("updating flight %s: %w", id, err)
	}
	return nil
}

// Delete removes a flight.
func (s *FlightService) Delete(ctx context.Context, id entities.ID) error {
	if id.IsZero() {
		return ErrIDRequired
	}
	if err := s.backend.DeleteFlight(ctx, id); err != nil {
		return fmt.Errorf("deleting flight %s: %w", id, err)
	}
	return nil
}

// Draft rebuilds the write payload of a displayed flight by matching its
// airport names and gate code against the known airports and gates. Fields
// that match nothing are left empty.
func Draft(f entities.Flight, airports []entities.Airport, gates []entities.Gate) entities.FlightInput {
	in := entities.FlightInput{Aircraft: f.Aircraft}
	if in.Aircraft.AirlineName == entities.DefaultAirlineName {
		in.Aircraft.AirlineName = ""
	}
	if in.Aircraft.Type == entities.DefaultAircraftType {
		in.Aircraft.Type = ""
	}

	for _, a := range airports {
		if in.DepartureAirport.ID.IsZero() && a.Name == f.DepartureAirport.Name {
			in.DepartureAirport.ID = a.ID
		}
		if in.ArrivalAirport.ID.IsZero() && a.Name == f.ArrivalAirport.Name {
			in.ArrivalAirport.ID = a.ID
		}
	}
	for _, g := range gates {
		if g.Code == f.Gate.Code {
			in.Gate = &entities.Ref{ID: g.ID}
			break
		}
	}
	return in
}

func cleanFlight(in entities.FlightInput) entities.FlightInput {
	in.Aircraft.AirlineName = strings.TrimSpace(in.Aircraft.AirlineName)
	in.Aircraft.Type = strings.TrimSpace(in.Aircraft.Type)
	if in.Gate != nil && in.Gate.ID.IsZero() {
		in.Gate = nil
	}
	return in
}

func addressableFlights(raw []any) []entities.Flight {
	flights := normalize.Flights(raw)
	out := flights[:0]
	for _, f := range flights {
		if f.HasIdentity() {
			out = append(out, f)
		}
	}
	return out
}
