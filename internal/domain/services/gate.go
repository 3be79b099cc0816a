package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/normalize"
	"github.com/ersonp/flightdesk/internal/domain/ports"
)

// GateService manages gates.
type GateService struct {
	backend ports.GateBackend
}

// NewGateService creates a new GateService.
func NewGateService(backend ports.GateBackend) *GateService {
	return &GateService{backend: backend}
}

// List returns every addressable gate.
func (s *GateService) List(ctx context.Context) ([]entities.Gate, error) {
	raw, err := s.backend.ListGates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing gates: %w", err)
	}
	gates := normalize.Gates(raw)
	out := gates[:0]
	for _, g := range gates {
		if !g.ID.IsZero() {
			out = append(out, g)
		}
	}
	return out, nil
}

// Create validates and posts a gate.
func (s *GateService) Create(ctx context.Context, in entities.GateInput) (entities.ID, error) {
	in.Code = strings.TrimSpace(in.Code)
	if err := ValidateGate(in); err != nil {
		return entities.ID{}, err
	}
	reply, err := s.backend.CreateGate(ctx, in)
	if err != nil {
		return entities.ID{}, fmt.Errorf("creating gate: %w", err)
	}
	created, _ := normalize.Gate(reply)
	return created.ID, nil
}

// Update validates and replaces a gate.
func (s *GateService) Update(ctx context.Context, id entities.ID, in entities.GateInput) error {
	if id.IsZero() {
		return ErrIDRequired
	}
	in.Code = strings.TrimSpace(in.Code)
	if err := ValidateGate(in); err != nil {
		return err
	}
	if _, err := s.backend.UpdateGate(ctx, id, in); err != nil {
		return fmt.Errorf("updating gate %s: %w", id, err)
	}
	return nil
}

// Delete removes a gate.
func (s *GateService) Delete(ctx context.Context, id entities.ID) error {
	if id.IsZero() {
		return ErrIDRequired
	}
	if err := s.backend.DeleteGate(ctx, id); err != nil {
		return fmt.Errorf("deleting gate %s: %w", id, err)
	}
	return nil
}

// AirportOf returns the airport a gate belongs to, read from the gate detail.
// The id is empty when the detail cannot be fetched or carries no airport.
func (s *GateService) AirportOf(ctx context.Context, gateID entities.ID) entities.ID {
	if gateID.IsZero() {
		return entities.ID{}
	}
	detail, err := s.backend.GetGate(ctx, gateID)
	if err != nil {
		return entities.ID{}
	}
	rec, _ := detail.(map[string]any)
	airport, _ := rec["airport"].(map[string]any)
	return entities.NewID(airport["id"])
}
