package entities

// Fallbacks used when a fetched flight lacks a field under every known alias.
const (
	DefaultAirlineName  = "Unknown Airline"
	DefaultAircraftType = "Unknown"
	DefaultAirportName  = "Unknown"
	DefaultGateCode     = "TBD"
)

// Flight is the canonical shape of a flight as shown on boards and admin lists.
type Flight struct {
	ID               ID         `json:"id"`
	Aircraft         Aircraft   `json:"aircraft"`
	DepartureAirport AirportRef `json:"departureAirport"`
	ArrivalAirport   AirportRef `json:"arrivalAirport"`
	Gate             GateRef    `json:"gate"`
	Status           string     `json:"status,omitempty"`
}

// Aircraft describes the operating airline and aircraft type.
type Aircraft struct {
	AirlineName string `json:"airlineName"`
	Type        string `json:"type"`
}

// AirportRef is the airport summary embedded in a flight.
type AirportRef struct {
	Name string `json:"name"`
}

// GateRef is the gate summary embedded in a flight.
type GateRef struct {
	Code string `json:"code"`
}

// HasIdentity reports whether the flight can be addressed by edit or delete.
func (f Flight) HasIdentity() bool {
	return !f.ID.IsZero()
}

// Ref is a write-side reference to another record by identifier.
type Ref struct {
	ID ID `json:"id"`
}

// FlightInput is the payload sent when creating or updating a flight.
// A nil Gate is sent as null, meaning no gate is assigned.
type FlightInput struct {
	Aircraft         Aircraft `json:"aircraft"`
	DepartureAirport Ref      `json:"departureAirport"`
	ArrivalAirport   Ref      `json:"arrivalAirport"`
	Gate             *Ref     `json:"gate"`
}
