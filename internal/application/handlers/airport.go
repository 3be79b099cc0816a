package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/services"
)

// AirportHandler handles airport administration and the default airport
// selection used by the boards.
type AirportHandler struct {
	service *services.AirportService
}

// NewAirportHandler creates a new AirportHandler.
func NewAirportHandler(service *services.AirportService) *AirportHandler {
	return &AirportHandler{
		service: service,
	}
}

// HandleList returns every airport.
func (h *AirportHandler) HandleList(ctx context.Context) ([]entities.Airport, error) {
	airports, err := h.service.List(ctx)
	if err != nil {
		return nil, fail(err, fixed(MsgFetchAirports))
	}
	return airports, nil
}

// HandleCreate validates and creates an airport.
func (h *AirportHandler) HandleCreate(ctx context.Context, in entities.AirportInput) (entities.ID, error) {
	id, err := h.service.Create(ctx, in)
	if err != nil {
		return entities.ID{}, fail(err, ExplainAirportSave)
	}
	return id, nil
}

// HandleUpdate validates and replaces an airport.
func (h *AirportHandler) HandleUpdate(ctx context.Context, id entities.ID, in entities.AirportInput) error {
	if err := h.service.Update(ctx, id, in); err != nil {
		return fail(err, ExplainAirportSave)
	}
	return nil
}

// HandleDelete removes an airport.
func (h *AirportHandler) HandleDelete(ctx context.Context, id entities.ID) error {
	if err := h.service.Delete(ctx, id); err != nil {
		return fail(err, ExplainAirportDelete)
	}
	return nil
}

// HandleSelect resolves the airport to use as the board default. A
// non-zero id must name a listed airport; the zero id picks the first one.
// It returns nil when no airports exist.
func (h *AirportHandler) HandleSelect(ctx context.Context, id entities.ID) (*entities.Airport, error) {
	airports, err := h.HandleList(ctx)
	if err != nil {
		return nil, err
	}
	if id.IsZero() {
		if len(airports) == 0 {
			return nil, nil
		}
		return &airports[0], nil
	}
	for i := range airports {
		if airports[i].ID.Equal(id) {
			return &airports[i], nil
		}
	}
	return nil, &OperationError{Message: fmt.Sprintf("Airport %s not found.", id)}
}
