package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/mocks"
)

func rawFlight(id int, airline, from, to, gate string) map[string]any {
	return map[string]any{
		"id":               json.Number(strconv.Itoa(id)),
		"aircraft":         map[string]any{"airlineName": airline, "type": "A320"},
		"departureAirport": map[string]any{"name": from},
		"arrivalAirport":   map[string]any{"name": to},
		"gate":             map[string]any{"code": gate},
	}
}

func validFlightInput() entities.FlightInput {
	return entities.FlightInput{
		Aircraft:         entities.Aircraft{AirlineName: "Air Canada", Type: "A320"},
		DepartureAirport: entities.Ref{ID: entities.ParseID("1")},
		ArrivalAirport:   entities.Ref{ID: entities.ParseID("2")},
	}
}

func TestFlightService_List_DropsUnaddressable(t *testing.T) {
	backend := mocks.NewBackend()
	backend.Flights = []any{
		rawFlight(1, "Air Canada", "St. John's", "Halifax", "A1"),
		map[string]any{"garbage": true},
		nil,
		"noise",
	}

	flights, err := NewFlightService(backend).List(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "1", flights[0].ID.String())
	assert.Equal(t, "Air Canada", flights[0].Aircraft.AirlineName)
}

func TestFlightService_List_Error(t *testing.T) {
	backend := mocks.NewBackend()
	backend.Err = errors.New("connection refused")

	_, err := NewFlightService(backend).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing flights")
	assert.ErrorIs(t, err, backend.Err)
}

func TestFlightService_Boards(t *testing.T) {
	backend := mocks.NewBackend()
	backend.Arrivals = []any{rawFlight(1, "Air Canada", "Toronto", "St. John's", "A1")}
	backend.Departures = []any{rawFlight(2, "WestJet", "St. John's", "Calgary", "B2"), rawFlight(3, "Porter", "St. John's", "Ottawa", "B3")}
	svc := NewFlightService(backend)
	ctx := context.Background()

	arrivals, err := svc.Arrivals(ctx, entities.ParseID("7"))
	require.NoError(t, err)
	assert.Len(t, arrivals, 1)

	departures, err := svc.Departures(ctx)
	require.NoError(t, err)
	assert.Len(t, departures, 2)

	calls := backend.CallsTo("ListArrivals")
	require.Len(t, calls, 1)
	assert.Equal(t, []entities.ID{entities.ParseID("7")}, calls[0].AirportIDs)
	assert.Empty(t, backend.CallsTo("ListDepartures")[0].AirportIDs)
}

func TestFlightService_FilterByAirportName(t *testing.T) {
	backend := mocks.NewBackend()
	backend.Flights = []any{
		rawFlight(1, "Air Canada", "Toronto", "St. John's", "A1"),
		rawFlight(2, "WestJet", "St. John's", "Calgary", "B2"),
		rawFlight(3, "Porter", "Ottawa", "Halifax", "C3"),
	}
	svc := NewFlightService(backend)
	ctx := context.Background()

	arrivals, err := svc.ArrivalsAt(ctx, "St. John's")
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, "1", arrivals[0].ID.String())

	departures, err := svc.DeparturesAt(ctx, "St. John's")
	require.NoError(t, err)
	require.Len(t, departures, 1)
	assert.Equal(t, "2", departures[0].ID.String())

	none, err := svc.ArrivalsAt(ctx, "Gander")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFlightService_Get(t *testing.T) {
	backend := mocks.NewBackend()
	backend.Flights = []any{rawFlight(4, "Air Canada", "A", "B", "A1")}
	svc := NewFlightService(backend)

	found, err := svc.Get(context.Background(), entities.ParseID("4"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "A1", found.Gate.Code)

	missing, err := svc.Get(context.Background(), entities.ParseID("99"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFlightService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   entities.FlightInput
		wantErr error
	}{
		{name: "valid", input: validFlightInput()},
		{
			name: "missing airline",
			input: func() entities.FlightInput {
				in := validFlightInput()
				in.Aircraft.AirlineName = "  "
				return in
			}(),
			wantErr: ErrAircraftRequired,
		},
		{
			name: "missing type",
			input: func() entities.FlightInput {
				in := validFlightInput()
				in.Aircraft.Type = ""
				return in
			}(),
			wantErr: ErrAircraftRequired,
		},
		{
			name: "missing arrival airport",
			input: func() entities.FlightInput {
				in := validFlightInput()
				in.ArrivalAirport = entities.Ref{}
				return in
			}(),
			wantErr: ErrAirportsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := mocks.NewBackend()
			backend.Reply = map[string]any{"id": json.Number("12")}

			id, err := NewFlightService(backend).Create(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, backend.Calls())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "12", id.String())
			assert.Len(t, backend.CallsTo("CreateFlight"), 1)
		})
	}
}

func TestFlightService_Create_NoContentReply(t *testing.T) {
	backend := mocks.NewBackend()

	id, err := NewFlightService(backend).Create(context.Background(), validFlightInput())
	require.NoError(t, err)
	assert.True(t, id.IsZero())
}

func TestFlightService_Create_CleansInput(t *testing.T) {
	backend := mocks.NewBackend()
	in := validFlightInput()
	in.Aircraft.AirlineName = " Air Canada "
	in.Gate = &entities.Ref{}

	_, err := NewFlightService(backend).Create(context.Background(), in)
	require.NoError(t, err)

	sent := backend.CallsTo("CreateFlight")[0].Input.(entities.FlightInput)
	assert.Equal(t, "Air Canada", sent.Aircraft.AirlineName)
	assert.Nil(t, sent.Gate)
}

func TestFlightService_UpdateDelete(t *testing.T) {
	backend := mocks.NewBackend()
	svc := NewFlightService(backend)
	ctx := context.Background()

	require.ErrorIs(t, svc.Update(ctx, entities.ID{}, validFlightInput()), ErrIDRequired)
	require.ErrorIs(t, svc.Delete(ctx, entities.ID{}), ErrIDRequired)
	assert.Empty(t, backend.Calls())

	require.NoError(t, svc.Update(ctx, entities.ParseID("3"), validFlightInput()))
	require.NoError(t, svc.Delete(ctx, entities.ParseID("3")))

	backend.Errs["DeleteFlight"] = errors.New("conflict")
	err := svc.Delete(ctx, entities.ParseID("3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleting flight 3")
}

func TestDraft(t *testing.T) {
	airports := []entities.Airport{
		{ID: entities.ParseID("1"), Name: "St. John's"},
		{ID: entities.ParseID("2"), Name: "Halifax"},
	}
	gates := []entities.Gate{
		{ID: entities.ParseID("5"), Code: "A1"},
	}

	t.Run("everything matches", func(t *testing.T) {
		f := entities.Flight{
			Aircraft:         entities.Aircraft{AirlineName: "Air Canada", Type: "A320"},
			DepartureAirport: entities.AirportRef{Name: "St. John's"},
			ArrivalAirport:   entities.AirportRef{Name: "Halifax"},
			Gate:             entities.GateRef{Code: "A1"},
		}
		in := Draft(f, airports, gates)
		assert.Equal(t, "1", in.DepartureAirport.ID.String())
		assert.Equal(t, "2", in.ArrivalAirport.ID.String())
		require.NotNil(t, in.Gate)
		assert.Equal(t, "5", in.Gate.ID.String())
	})

	t.Run("defaults are cleared and unmatched stays empty", func(t *testing.T) {
		f := entities.Flight{
			Aircraft:         entities.Aircraft{AirlineName: entities.DefaultAirlineName, Type: entities.DefaultAircraftType},
			DepartureAirport: entities.AirportRef{Name: entities.DefaultAirportName},
			ArrivalAirport:   entities.AirportRef{Name: "Halifax"},
			Gate:             entities.GateRef{Code: entities.DefaultGateCode},
		}
		in := Draft(f, airports, gates)
		assert.Empty(t, in.Aircraft.AirlineName)
		assert.Empty(t, in.Aircraft.Type)
		assert.True(t, in.DepartureAirport.ID.IsZero())
		assert.Equal(t, "2", in.ArrivalAirport.ID.String())
		assert.Nil(t, in.Gate)
	})
}
