package flightapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/normalize"
	"github.com/ersonp/flightdesk/internal/infrastructure/httpapi"
)

type received struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeService replies with the registered payload for "METHOD /path".
func fakeService(t *testing.T, replies map[string]string) (*httptest.Server, *[]received) {
	t.Helper()
	var log []received
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		log = append(log, received{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)})

		reply, ok := replies[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"not found"}`)
			return
		}
		if reply == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(server.Close)
	return server, &log
}

func newBackend(server *httptest.Server, style RouteStyle) *Backend {
	return New(httpapi.New(httpapi.Config{BaseURL: server.URL}), style)
}

func TestParseRouteStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected RouteStyle
		wantErr  bool
	}{
		{input: "", expected: RoutePlural},
		{input: "plural", expected: RoutePlural},
		{input: " Singular ", expected: RouteSingular},
		{input: "both", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			style, err := ParseRouteStyle(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, style)
		})
	}
}

func TestBackend_ListFlights_EndToEnd(t *testing.T) {
	server, _ := fakeService(t, map[string]string{
		"GET /flights": `[
			{"id": 1, "aircraft": {"airlineName": "Air Canada", "type": "A320"},
			 "departureAirport": {"name": "St. John's"}, "arrivalAirport": {"name": "Halifax"},
			 "gate": {"code": "A1"}},
			{"garbage": true},
			null
		]`,
	})
	backend := newBackend(server, RoutePlural)

	raw, err := backend.ListFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 3)

	flights := normalize.Flights(raw)
	require.Len(t, flights, 2)

	var addressable []entities.Flight
	for _, f := range flights {
		if f.HasIdentity() {
			addressable = append(addressable, f)
		}
	}
	require.Len(t, addressable, 1)
	assert.Equal(t, entities.Flight{
		ID:               entities.NewID(json.Number("1")),
		Aircraft:         entities.Aircraft{AirlineName: "Air Canada", Type: "A320"},
		DepartureAirport: entities.AirportRef{Name: "St. John's"},
		ArrivalAirport:   entities.AirportRef{Name: "Halifax"},
		Gate:             entities.GateRef{Code: "A1"},
	}, addressable[0])
}

func TestBackend_ListShapes(t *testing.T) {
	server, _ := fakeService(t, map[string]string{
		"GET /gates":    `null`,
		"GET /airports": `{"items": []}`,
	})
	backend := newBackend(server, RoutePlural)

	gates, err := backend.ListGates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gates)
	assert.NotNil(t, gates)

	_, err = backend.ListAirports(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedShape))
}

func TestBackend_BoardQueries(t *testing.T) {
	server, log := fakeService(t, map[string]string{
		"GET /arrivals":   `[]`,
		"GET /departures": `[]`,
	})
	backend := newBackend(server, RoutePlural)
	ctx := context.Background()

	_, err := backend.ListArrivals(ctx, []entities.ID{entities.ParseID("1"), {}, entities.ParseID("2")})
	require.NoError(t, err)
	_, err = backend.ListDepartures(ctx, nil)
	require.NoError(t, err)

	require.Len(t, *log, 2)
	assert.Equal(t, "airportId=1&airportId=2", (*log)[0].Query)
	assert.Equal(t, "/departures", (*log)[1].Path)
	assert.Empty(t, (*log)[1].Query)
}

func TestBackend_RouteStyles(t *testing.T) {
	tests := []struct {
		style    RouteStyle
		flights  string
		gates    string
		airports string
	}{
		{style: RoutePlural, flights: "/flights", gates: "/gates", airports: "/airports"},
		{style: RouteSingular, flights: "/flight", gates: "/gate", airports: "/airport"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			server, log := fakeService(t, map[string]string{
				"POST " + tt.flights:           `{"id": 10}`,
				"PUT " + tt.flights + "/10":    `{"id": 10}`,
				"DELETE " + tt.flights + "/10": ``,
				"GET " + tt.gates:              `[]`,
				"GET " + tt.gates + "/3":       `{"id": 3, "code": "B2", "airport": {"id": 7}}`,
				"DELETE " + tt.gates + "/3":    ``,
				"POST " + tt.airports:          `{"id": 7}`,
				"DELETE " + tt.airports + "/7": ``,
				"GET /flights":                 `[]`,
			})
			backend := newBackend(server, tt.style)
			ctx := context.Background()

			reply, err := backend.CreateFlight(ctx, entities.FlightInput{})
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"id": json.Number("10")}, reply)

			_, err = backend.UpdateFlight(ctx, entities.ParseID("10"), entities.FlightInput{})
			require.NoError(t, err)
			require.NoError(t, backend.DeleteFlight(ctx, entities.ParseID("10")))

			_, err = backend.ListGates(ctx)
			require.NoError(t, err)
			detail, err := backend.GetGate(ctx, entities.ParseID("3"))
			require.NoError(t, err)
			assert.Equal(t, "B2", detail.(map[string]any)["code"])
			require.NoError(t, backend.DeleteGate(ctx, entities.ParseID("3")))

			_, err = backend.CreateAirport(ctx, entities.AirportInput{Name: "Gander"})
			require.NoError(t, err)
			require.NoError(t, backend.DeleteAirport(ctx, entities.ParseID("7")))

			_, err = backend.ListFlights(ctx)
			require.NoError(t, err)

			assert.Len(t, *log, 9)
		})
	}
}

func TestBackend_WritePayloads(t *testing.T) {
	server, log := fakeService(t, map[string]string{
		"POST /flights":  `{"id": 1}`,
		"PUT /gates/4":   `{"id": 4}`,
		"POST /airports": `{"id": 2}`,
	})
	backend := newBackend(server, RoutePlural)
	ctx := context.Background()

	_, err := backend.CreateFlight(ctx, entities.FlightInput{
		Aircraft:         entities.Aircraft{AirlineName: "PAL Airlines", Type: "Dash 8"},
		DepartureAirport: entities.Ref{ID: entities.ParseID("1")},
		ArrivalAirport:   entities.Ref{ID: entities.ParseID("2")},
	})
	require.NoError(t, err)

	_, err = backend.UpdateGate(ctx, entities.ParseID("4"), entities.GateInput{
		Code:    "C3",
		Airport: entities.Ref{ID: entities.ParseID("1")},
	})
	require.NoError(t, err)

	_, err = backend.CreateAirport(ctx, entities.AirportInput{Name: "Deer Lake"})
	require.NoError(t, err)

	require.Len(t, *log, 3)
	assert.JSONEq(t, `{
		"aircraft": {"airlineName": "PAL Airlines", "type": "Dash 8"},
		"departureAirport": {"id": 1},
		"arrivalAirport": {"id": 2},
		"gate": null
	}`, (*log)[0].Body)
	assert.JSONEq(t, `{"code": "C3", "airport": {"id": 1}}`, (*log)[1].Body)
	assert.JSONEq(t, `{"name": "Deer Lake", "code": null}`, (*log)[2].Body)
}

func TestBackend_Errors(t *testing.T) {
	server, log := fakeService(t, map[string]string{})
	backend := newBackend(server, RoutePlural)
	ctx := context.Background()

	err := backend.DeleteGate(ctx, entities.ParseID("9"))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpapi.StatusCode(err))

	apiErr, ok := httpapi.AsError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"message": "not found"}, apiErr.Data)

	err = backend.DeleteFlight(ctx, entities.ID{})
	assert.True(t, errors.Is(err, ErrMissingID))
	_, err = backend.UpdateAirport(ctx, entities.ID{}, entities.AirportInput{})
	assert.True(t, errors.Is(err, ErrMissingID))
	_, err = backend.GetGate(ctx, entities.ID{})
	assert.True(t, errors.Is(err, ErrMissingID))

	assert.Len(t, *log, 1)
}
