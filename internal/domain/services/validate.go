package services

import (
	"strings"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

// ValidationError is a payload rejected before any call is made. Message is
// shown to the operator as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failures.
var (
	ErrAircraftRequired = &ValidationError{Field: "aircraft", Message: "Please provide airline name and aircraft type."}
	ErrAirportsRequired = &ValidationError{Field: "airports", Message: "Please select both departure and arrival airports."}
	ErrGateCodeRequired = &ValidationError{Field: "code", Message: "Gate code is required."}
	ErrGateAirport      = &ValidationError{Field: "airport", Message: "Please select an airport for the gate."}
	ErrAirportName      = &ValidationError{Field: "name", Message: "Airport name is required."}
	ErrIDRequired       = &ValidationError{Field: "id", Message: "An identifier is required."}
)

// ValidateFlight checks a flight payload before it is sent.
func ValidateFlight(in entities.FlightInput) error {
	if blank(in.Aircraft.AirlineName) || blank(in.Aircraft.Type) {
		return ErrAircraftRequired
	}
	if in.DepartureAirport.ID.IsZero() || in.ArrivalAirport.ID.IsZero() {
		return ErrAirportsRequired
	}
	return nil
}

// ValidateGate checks a gate payload before it is sent.
func ValidateGate(in entities.GateInput) error {
	if blank(in.Code) {
		return ErrGateCodeRequired
	}
	if in.Airport.ID.IsZero() {
		return ErrGateAirport
	}
	return nil
}

// ValidateAirport checks an airport payload before it is sent.
func ValidateAirport(in entities.AirportInput) error {
	if blank(in.Name) {
		return ErrAirportName
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
