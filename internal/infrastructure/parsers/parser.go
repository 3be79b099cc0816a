// Package parsers reads flight import files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

// RawFlight is one flight row read from an import file, before validation.
type RawFlight struct {
	AirlineName        string      `json:"airline_name" csv:"airline_name"`
	AircraftType       string      `json:"aircraft_type" csv:"aircraft_type"`
	DepartureAirportID entities.ID `json:"departure_airport_id" csv:"departure_airport_id"`
	ArrivalAirportID   entities.ID `json:"arrival_airport_id" csv:"arrival_airport_id"`
	GateID             entities.ID `json:"gate_id,omitempty" csv:"gate_id,omitempty"`
	LineNum            int         `json:"-" csv:"-"` // set by parser
}

// Input converts the row into a write payload. An empty gate id means no gate.
func (r RawFlight) Input() entities.FlightInput {
	in := entities.FlightInput{
		Aircraft: entities.Aircraft{
			AirlineName: strings.TrimSpace(r.AirlineName),
			Type:        strings.TrimSpace(r.AircraftType),
		},
		DepartureAirport: entities.Ref{ID: r.DepartureAirportID},
		ArrivalAirport:   entities.Ref{ID: r.ArrivalAirportID},
	}
	if !r.GateID.IsZero() {
		in.Gate = &entities.Ref{ID: r.GateID}
	}
	return in
}

// Parser defines the interface for parsing flight rows from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawFlight, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
