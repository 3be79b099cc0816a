package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/mocks"
	"github.com/ersonp/flightdesk/internal/domain/services"
)

func TestGateHandler_HandleCreate(t *testing.T) {
	backend := mocks.NewBackend()
	handler := NewGateHandler(services.NewGateService(backend))
	ctx := context.Background()

	_, err := handler.HandleCreate(ctx, entities.GateInput{Code: "A1"})
	assert.EqualError(t, err, "Please select an airport for the gate.")

	backend.Errs["CreateGate"] = statusErr(409, "")
	_, err = handler.HandleCreate(ctx, entities.GateInput{Code: "A1", Airport: entities.Ref{ID: entities.ParseID("10")}})
	assert.EqualError(t, err, "Gate code must be unique.")
}

func TestGateHandler_HandleUpdate_KeepsCurrentValues(t *testing.T) {
	backend := seededBackend()
	backend.GateDetails["5"] = map[string]any{"id": json.Number("5"), "code": "A1", "airport": map[string]any{"id": json.Number("10")}}
	handler := NewGateHandler(services.NewGateService(backend))

	require.NoError(t, handler.HandleUpdate(context.Background(), entities.ParseID("5"), GatePatch{Code: ptr("A1X")}))

	calls := backend.CallsTo("UpdateGate")
	require.Len(t, calls, 1)
	assert.Equal(t, entities.GateInput{Code: "A1X", Airport: entities.Ref{ID: entities.NewID(json.Number("10"))}}, calls[0].Input)
}

func TestGateHandler_HandleUpdate_AirportOnly(t *testing.T) {
	backend := seededBackend()
	handler := NewGateHandler(services.NewGateService(backend))

	require.NoError(t, handler.HandleUpdate(context.Background(), entities.ParseID("6"), GatePatch{AirportID: ptr(entities.ParseID("20"))}))

	in := backend.CallsTo("UpdateGate")[0].Input.(entities.GateInput)
	assert.Equal(t, "B2", in.Code)
	assert.Equal(t, "20", in.Airport.ID.String())
	assert.Empty(t, backend.CallsTo("GetGate"))
}

func TestGateHandler_HandleUpdate_UnknownAirport(t *testing.T) {
	backend := seededBackend()
	handler := NewGateHandler(services.NewGateService(backend))

	err := handler.HandleUpdate(context.Background(), entities.ParseID("6"), GatePatch{Code: ptr("B3")})
	require.ErrorIs(t, err, services.ErrGateAirport)
	assert.Empty(t, backend.CallsTo("UpdateGate"))

	err = handler.HandleUpdate(context.Background(), entities.ParseID("99"), GatePatch{})
	assert.EqualError(t, err, "Gate 99 not found.")
}

func TestGateHandler_HandleDelete(t *testing.T) {
	backend := seededBackend()
	backend.Errs["DeleteGate"] = statusErr(500, "update or delete on table \"gate\" violates foreign key constraint")
	handler := NewGateHandler(services.NewGateService(backend))

	err := handler.HandleDelete(context.Background(), entities.ParseID("5"))
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Cannot delete gate: it's assigned to one or more flights.", opErr.Message)
	assert.Equal(t, "Gate is in use (assigned to flights). Unassign first.", opErr.Detail)
}
