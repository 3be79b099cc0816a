package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		zero     bool
	}{
		{name: "json number", input: json.Number("7"), expected: "7"},
		{name: "string", input: "abc123", expected: "abc123"},
		{name: "float", input: float64(12), expected: "12"},
		{name: "int", input: 3, expected: "3"},
		{name: "nil", input: nil, zero: true},
		{name: "object", input: map[string]any{"id": 1}, zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewID(tt.input)
			assert.Equal(t, tt.zero, id.IsZero())
			assert.Equal(t, tt.expected, id.String())
		})
	}
}

func TestID_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		id       ID
		expected string
	}{
		{name: "zero is null", id: ID{}, expected: "null"},
		{name: "numeric", id: NewID(json.Number("42")), expected: "42"},
		{name: "string", id: NewID("64f1c0"), expected: `"64f1c0"`},
		{name: "parsed integer", id: ParseID("5"), expected: "5"},
		{name: "parsed leading zero stays a string", id: ParseID("007"), expected: `"007"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	var ref Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id": 9}`), &ref))
	assert.Equal(t, "9", ref.ID.String())

	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 9}`, string(data))

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &ref))
	assert.True(t, ref.ID.IsZero())

	err = json.Unmarshal([]byte(`{"id": [1]}`), &ref)
	require.Error(t, err)
}

func TestAirport_Label(t *testing.T) {
	assert.Equal(t, "YYT - St. John's Intl", Airport{Name: "St. John's Intl", Code: "YYT"}.Label())
	assert.Equal(t, "Gander", Airport{Name: "Gander"}.Label())
}

func TestFlightInput_MarshalJSON(t *testing.T) {
	in := FlightInput{
		Aircraft:         Aircraft{AirlineName: "Air Canada", Type: "A320"},
		DepartureAirport: Ref{ID: ParseID("1")},
		ArrivalAirport:   Ref{ID: ParseID("2")},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"aircraft": {"airlineName": "Air Canada", "type": "A320"},
		"departureAirport": {"id": 1},
		"arrivalAirport": {"id": 2},
		"gate": null
	}`, string(data))
}
