package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

func sampleFlights() []entities.Flight {
	return []entities.Flight{
		{
			ID:               entities.ParseID("7"),
			Aircraft:         entities.Aircraft{AirlineName: "Air Canada", Type: "A320"},
			DepartureAirport: entities.AirportRef{Name: "St. John's"},
			ArrivalAirport:   entities.AirportRef{Name: "Halifax"},
			Gate:             entities.GateRef{Code: "A1"},
			Status:           "ON_TIME",
		},
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	err := formatJSON(&buf, sampleFlights())
	require.NoError(t, err)

	var parsed []map[string]any
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	require.Len(t, parsed, 1)
	assert.Equal(t, float64(7), parsed[0]["id"])
	assert.Equal(t, map[string]any{"airlineName": "Air Canada", "type": "A320"}, parsed[0]["aircraft"])
	assert.Equal(t, map[string]any{"name": "St. John's"}, parsed[0]["departureAirport"])
	assert.Equal(t, map[string]any{"code": "A1"}, parsed[0]["gate"])
	assert.Equal(t, "ON_TIME", parsed[0]["status"])
}

func TestFormatJSON_EmptyFlights(t *testing.T) {
	var buf bytes.Buffer
	err := formatJSON(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	err := formatCSV(&buf, sampleFlights())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "id,airline_name,aircraft_type,departure_airport,arrival_airport,gate,status", lines[0])
	assert.Equal(t, "7,Air Canada,A320,St. John's,Halifax,A1,ON_TIME", lines[1])
}

func TestFormatCSV_SpecialCharacters(t *testing.T) {
	flights := sampleFlights()
	flights[0].Aircraft.AirlineName = "Name, with comma"

	var buf bytes.Buffer
	err := formatCSV(&buf, flights)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "\"Name, with comma\"")
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	err := formatMarkdown(&buf, sampleFlights())
	require.NoError(t, err)

	result := buf.String()
	assert.Contains(t, result, "# Exported Flights")
	assert.Contains(t, result, "Total: 1 flights")
	assert.Contains(t, result, "| Airline | Aircraft | From | To | Gate | Status |")
	assert.Contains(t, result, "| Air Canada | A320 | St. John's | Halifax | A1 | ON_TIME |")
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "pipe escaped",
			input:    "value|with|pipes",
			expected: "value\\|with\\|pipes",
		},
		{
			name:     "newline replaced",
			input:    "line1\nline2",
			expected: "line1 line2",
		},
		{
			name:     "no change needed",
			input:    "simple text",
			expected: "simple text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeMarkdown(tt.input))
		})
	}
}

func TestFormatFlights_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := formatFlights(&buf, "xml", sampleFlights())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestWriteExport_ToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "flights.csv")

	var stdout bytes.Buffer
	err := writeExport(&stdout, exportFlags{format: "csv", output: output}, sampleFlights())
	require.NoError(t, err)

	assert.Equal(t, "Exported 1 flights to "+output+"\n", stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "id,airline_name"))
}

func TestWriteExport_Stdout(t *testing.T) {
	var stdout bytes.Buffer
	err := writeExport(&stdout, exportFlags{format: "markdown"}, sampleFlights())
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "# Exported Flights")
	assert.NotContains(t, stdout.String(), "Exported 1 flights to")
}
