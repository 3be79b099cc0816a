package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/services"
)

// GateHandler handles gate administration.
type GateHandler struct {
	service *services.GateService
}

// NewGateHandler creates a new GateHandler.
func NewGateHandler(service *services.GateService) *GateHandler {
	return &GateHandler{
		service: service,
	}
}

// GatePatch lists the fields an update changes. Nil fields keep their
// current value.
type GatePatch struct {
	Code      *string
	AirportID *entities.ID
}

// HandleList returns every gate.
func (h *GateHandler) HandleList(ctx context.Context) ([]entities.Gate, error) {
	gates, err := h.service.List(ctx)
	if err != nil {
		return nil, fail(err, fixed(MsgFetchGates))
	}
	return gates, nil
}

// HandleCreate validates and creates a gate.
func (h *GateHandler) HandleCreate(ctx context.Context, in entities.GateInput) (entities.ID, error) {
	id, err := h.service.Create(ctx, in)
	if err != nil {
		return entities.ID{}, fail(err, ExplainGateSave)
	}
	return id, nil
}

// HandleUpdate applies patch on top of the gate's current values. The
// current airport is read from the gate detail.
func (h *GateHandler) HandleUpdate(ctx context.Context, id entities.ID, patch GatePatch) error {
	if id.IsZero() {
		return services.ErrIDRequired
	}

	var in entities.GateInput
	if patch.Code != nil {
		in.Code = *patch.Code
	} else {
		code, err := h.currentCode(ctx, id)
		if err != nil {
			return err
		}
		in.Code = code
	}

	if patch.AirportID != nil {
		in.Airport.ID = *patch.AirportID
	} else {
		in.Airport.ID = h.service.AirportOf(ctx, id)
	}

	if err := h.service.Update(ctx, id, in); err != nil {
		return fail(err, ExplainGateSave)
	}
	return nil
}

func (h *GateHandler) currentCode(ctx context.Context, id entities.ID) (string, error) {
	gates, err := h.HandleList(ctx)
	if err != nil {
		return "", err
	}
	for _, g := range gates {
		if g.ID.Equal(id) {
			return g.Code, nil
		}
	}
	return "", &OperationError{Message: fmt.Sprintf("Gate %s not found.", id)}
}

// HandleDelete removes a gate.
func (h *GateHandler) HandleDelete(ctx context.Context, id entities.ID) error {
	if err := h.service.Delete(ctx, id); err != nil {
		return fail(err, ExplainGateDelete)
	}
	return nil
}
