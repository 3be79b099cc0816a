package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/services"
)

// FlightHandler handles flight administration.
type FlightHandler struct {
	flights  *services.FlightService
	airports *services.AirportService
	gates    *services.GateService
}

// NewFlightHandler creates a new FlightHandler. Airports and gates are used to
// rebuild payloads for partial updates.
func NewFlightHandler(flights *services.FlightService, airports *services.AirportService, gates *services.GateService) *FlightHandler {
	return &FlightHandler{
		flights:  flights,
		airports: airports,
		gates:    gates,
	}
}

// FlightPatch lists the fields an update changes. Nil fields keep their
// current value.
type FlightPatch struct {
	AirlineName        *string
	AircraftType       *string
	DepartureAirportID *entities.ID
	ArrivalAirportID   *entities.ID
	// GateID set to the zero ID unassigns the gate.
	GateID *entities.ID
}

// HandleList returns every flight.
func (h *FlightHandler) HandleList(ctx context.Context) ([]entities.Flight, error) {
	flights, err := h.flights.List(ctx)
	if err != nil {
		return nil, fail(err, fixed(MsgFetchFlights))
	}
	return flights, nil
}

// HandleCreate validates and creates a flight.
func (h *FlightHandler) HandleCreate(ctx context.Context, in entities.FlightInput) (entities.ID, error) {
	id, err := h.flights.Create(ctx, in)
	if err != nil {
		return entities.ID{}, fail(err, ExplainFlightSave)
	}
	return id, nil
}

// HandleUpdate applies patch on top of the flight's current values.
func (h *FlightHandler) HandleUpdate(ctx context.Context, id entities.ID, patch FlightPatch) error {
	in, err := h.draft(ctx, id)
	if err != nil {
		return err
	}

	if patch.AirlineName != nil {
		in.Aircraft.AirlineName = *patch.AirlineName
	}
	if patch.AircraftType != nil {
		in.Aircraft.Type = *patch.AircraftType
	}
	if patch.DepartureAirportID != nil {
		in.DepartureAirport.ID = *patch.DepartureAirportID
	}
	if patch.ArrivalAirportID != nil {
		in.ArrivalAirport.ID = *patch.ArrivalAirportID
	}
	if patch.GateID != nil {
		in.Gate = nil
		if !patch.GateID.IsZero() {
			in.Gate = &entities.Ref{ID: *patch.GateID}
		}
	}

	if err := h.flights.Update(ctx, id, in); err != nil {
		return fail(err, ExplainFlightSave)
	}
	return nil
}

// draft rebuilds the current payload of flight id.
func (h *FlightHandler) draft(ctx context.Context, id entities.ID) (entities.FlightInput, error) {
	if id.IsZero() {
		return entities.FlightInput{}, services.ErrIDRequired
	}

	current, err := h.flights.Get(ctx, id)
	if err != nil {
		return entities.FlightInput{}, fail(err, fixed(MsgFetchFlights))
	}
	if current == nil {
		return entities.FlightInput{}, &OperationError{Message: fmt.Sprintf("Flight %s not found.", id)}
	}

	airports, err := h.airports.List(ctx)
	if err != nil {
		return entities.FlightInput{}, fail(err, fixed(MsgFetchAirports))
	}
	gates, err := h.gates.List(ctx)
	if err != nil {
		return entities.FlightInput{}, fail(err, fixed(MsgFetchGates))
	}

	return services.Draft(*current, airports, gates), nil
}

// HandleDelete removes a flight.
func (h *FlightHandler) HandleDelete(ctx context.Context, id entities.ID) error {
	if err := h.flights.Delete(ctx, id); err != nil {
		return fail(err, ExplainFlightDelete)
	}
	return nil
}
