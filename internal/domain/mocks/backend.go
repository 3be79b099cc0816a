package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

// Call records one invocation of the mock Backend.
type Call struct {
	Method     string
	ID         entities.ID
	AirportIDs []entities.ID
	Input      any
}

// Backend is a mock implementation of ports.Backend. List fields hold the
// decoded payloads returned as-is. Err fails every call; Errs fails a single
// method by name (for example "DeleteGate").
type Backend struct {
	Flights    []any
	Arrivals   []any
	Departures []any
	Gates      []any
	Airports   []any

	// GateDetails maps a gate id to the GetGate payload.
	GateDetails map[string]any

	// Reply is returned by every create and update call.
	Reply any

	Err  error
	Errs map[string]error

	mu    sync.Mutex
	calls []Call
}

// NewBackend creates a new mock Backend.
func NewBackend() *Backend {
	return &Backend{
		GateDetails: make(map[string]any),
		Errs:        make(map[string]error),
	}
}

// Calls returns the recorded invocations in order.
func (m *Backend) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded invocations of one method.
func (m *Backend) CallsTo(method string) []Call {
	var out []Call
	for _, c := range m.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (m *Backend) record(c Call) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
	if m.Err != nil {
		return m.Err
	}
	return m.Errs[c.Method]
}

// Flight methods.

// ListFlights returns Flights.
func (m *Backend) ListFlights(_ context.Context) ([]any, error) {
	if err := m.record(Call{Method: "ListFlights"}); err != nil {
		return nil, err
	}
	return m.Flights, nil
}

// ListArrivals returns Arrivals.
func (m *Backend) ListArrivals(_ context.Context, airportIDs []entities.ID) ([]any, error) {
	if err := m.record(Call{Method: "ListArrivals", AirportIDs: airportIDs}); err != nil {
		return nil, err
	}
	return m.Arrivals, nil
}

// ListDepartures returns Departures.
func (m *Backend) ListDepartures(_ context.Context, airportIDs []entities.ID) ([]any, error) {
	if err := m.record(Call{Method: "ListDepartures", AirportIDs: airportIDs}); err != nil {
		return nil, err
	}
	return m.Departures, nil
}

// CreateFlight records the input and returns Reply.
func (m *Backend) CreateFlight(_ context.Context, in entities.FlightInput) (any, error) {
	if err := m.record(Call{Method: "CreateFlight", Input: in}); err != nil {
		return nil, err
	}
	return m.Reply, nil
}

// UpdateFlight records the input and returns Reply.
func (m *Backend) UpdateFlight(_ context.Context, id entities.ID, in entities.FlightInput) (any, error) {
	if err := m.record(Call{Method: "UpdateFlight", ID: id, Input: in}); err != nil {
		return nil, err
	}
	return m.Reply, nil
}

// DeleteFlight records the id.
func (m *Backend) DeleteFlight(_ context.Context, id entities.ID) error {
	return m.record(Call{Method: "DeleteFlight", ID: id})
}

// Gate methods.

// ListGates returns Gates.
func (m *Backend) ListGates(_ context.Context) ([]any, error) {
	if err := m.record(Call{Method: "ListGates"}); err != nil {
		return nil, err
	}
	return m.Gates, nil
}

// GetGate returns the GateDetails entry for id, or nil when there is none.
func (m *Backend) GetGate(_ context.Context, id entities.ID) (any, error) {
	if err := m.record(Call{Method: "GetGate", ID: id}); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.GateDetails[id.String()], nil
}

// CreateGate records the input and returns Reply.
func (m *Backend) CreateGate(_ context.Context, in entities.GateInput) (any, error) {
	if err := m.record(Call{Method: "CreateGate", Input: in}); err != nil {
		return nil, err
	}
	return m.Reply, nil
}

// UpdateGate records the input and returns Reply.
func (m *Backend) UpdateGate(_ context.Context, id entities.ID, in entities.GateInput) (any, error) {
	if err := m.record(Call{Method: "UpdateGate", ID: id, Input: in}); err != nil {
		return nil, err
	}
	return m.Reply, nil
}

// DeleteGate records the id.
func (m *Backend) DeleteGate(_ context.Context, id entities.ID) error {
	return m.record(Call{Method: "DeleteGate", ID: id})
}

// Airport methods.

// ListAirports returns Airports.
func (m *Backend) ListAirports(_ context.Context) ([]any, error) {
	if err := m.record(Call{Method: "ListAirports"}); err != nil {
		return nil, err
	}
	return m.Airports, nil
}

// CreateAirport records the input and returns Reply.
func (m *Backend) CreateAirport(_ context.Context, in entities.AirportInput) (any, error) {
	if err := m.record(Call{Method: "CreateAirport", Input: in}); err != nil {
		return nil, err
	}
	return m.Reply, nil
}

// UpdateAirport records the input and returns Reply.
func (m *Backend) UpdateAirport(_ context.Context, id entities.ID, in entities.AirportInput) (any, error) {
	if err := m.record(Call{Method: "UpdateAirport", ID: id, Input: in}); err != nil {
		return nil, err
	}
	return m.Reply, nil
}

// DeleteAirport records the id.
func (m *Backend) DeleteAirport(_ context.Context, id entities.ID) error {
	return m.record(Call{Method: "DeleteAirport", ID: id})
}
