package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/normalize"
	"github.com/ersonp/flightdesk/internal/domain/ports"
)

// AirportService manages airports.
type AirportService struct {
	backend ports.AirportBackend
}

// NewAirportService creates a new AirportService.
func NewAirportService(backend ports.AirportBackend) *AirportService {
	return &AirportService{backend: backend}
}

// List returns every addressable airport.
func (s *AirportService) List(ctx context.Context) ([]entities.Airport, error) {
	raw, err := s.backend.ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing airports: %w", err)
	}
	airports := normalize.Airports(raw)
	out := airports[:0]
	for _, a := range airports {
		if !a.ID.IsZero() {
			out = append(out, a)
		}
	}
	return out, nil
}

// Find returns the airport with the given id, or nil when it is not listed.
func (s *AirportService) Find(ctx context.Context, id entities.ID) (*entities.Airport, error) {
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

// Create validates and posts an airport.
func (s *AirportService) Create(ctx context.Context, in entities.AirportInput) (entities.ID, error) {
	in = cleanAirport(in)
	if err := ValidateAirport(in); err != nil {
		return entities.ID{}, err
	}
	reply, err := s.backend.CreateAirport(ctx, in)
	if err != nil {
		return entities.ID{}, fmt.Errorf("creating airport: %w", err)
	}
	created, _ := normalize.Airport(reply)
	return created.ID, nil
}

// Update validates and replaces an airport.
func (s *AirportService) Update(ctx context.Context, id entities.ID, in entities.AirportInput) error {
	if id.IsZero() {
		return ErrIDRequired
	}
	in = cleanAirport(in)
	if err := ValidateAirport(in); err != nil {
		return err
	}
	if _, err := s.backend.UpdateAirport(ctx, id, in); err != nil {
		return fmt.Errorf("updating airport %s: %w", id, err)
	}
	return nil
}

// Delete removes an airport.
func (s *AirportService) Delete(ctx context.Context, id entities.ID) error {
	if id.IsZero() {
		return ErrIDRequired
	}
	if err := s.backend.DeleteAirport(ctx, id); err != nil {
		return fmt.Errorf("deleting airport %s: %w", id, err)
	}
	return nil
}

func cleanAirport(in entities.AirportInput) entities.AirportInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	return in
}
