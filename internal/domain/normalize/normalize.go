// Package normalize converts loosely shaped backend records into canonical
// entities. Records arrive with aliased, nested or flattened field names
// depending on the backend version; every canonical string field is always
// populated and only the identifier may be empty.
//
// The functions are pure and never fail: malformed fields resolve to
// defaults, and input that is not a JSON object is reported as not
// normalizable.
package normalize

import (
	"github.com/ersonp/flightdesk/internal/domain/entities"
)

// Alias chains, in precedence order.
var (
	flightID  = keys("id", "flightId", "_id")
	gateID    = keys("id", "gateId", "_id")
	airportID = keys("id", "airportId", "_id")

	nestedAircraft = keys("aircraft")
	flatAirline    = keys("airlineName", "airline", "carrier")
	flatType       = keys("type", "aircraftType")

	departure = append(keys("departureAirport", "departure"), nested(truthyKey("from"), "name"))
	arrival   = append(keys("arrivalAirport", "arrival"), nested(truthyKey("to"), "name"))
	gate      = append(keys("gate"), nested(truthyKey("gateCode"), "code"))

	gateCode    = keys("code", "gateCode")
	airportName = keys("name", "airportName")
	airportCode = keys("code", "airportCode", "iata", "icao")
)

// nested wraps a flattened field in a single-key object so it resolves the
// same way as the nested alias it stands in for.
func nested(attempt accessor, field string) accessor {
	return func(rec map[string]any) (any, bool) {
		v, ok := attempt(rec)
		if !ok {
			return nil, false
		}
		return map[string]any{field: v}, true
	}
}

// Flight normalizes a raw flight record. It reports false when raw is not a
// JSON object.
func Flight(raw any) (entities.Flight, bool) {
	rec, ok := record(raw)
	if !ok {
		return entities.Flight{}, false
	}

	id, _ := resolve(rec, flightID...)

	f := entities.Flight{
		ID:               entities.NewID(id),
		Aircraft:         aircraft(rec),
		DepartureAirport: entities.AirportRef{Name: field(rec, departure, "name", entities.DefaultAirportName)},
		ArrivalAirport:   entities.AirportRef{Name: field(rec, arrival, "name", entities.DefaultAirportName)},
		Gate:             entities.GateRef{Code: field(rec, gate, "code", entities.DefaultGateCode)},
	}

	if status, ok := resolve(rec, key("status")); ok {
		f.Status = text(status)
	}

	return f, true
}

// aircraft prefers a nested aircraft object. Its fields are defaulted on their
// own and never borrow from the flattened aliases.
func aircraft(rec map[string]any) entities.Aircraft {
	if v, ok := resolve(rec, nestedAircraft...); ok {
		sub, _ := v.(map[string]any)
		return entities.Aircraft{
			AirlineName: textOr(sub, entities.DefaultAirlineName, key("airlineName")),
			Type:        textOr(sub, entities.DefaultAircraftType, key("type")),
		}
	}

	return entities.Aircraft{
		AirlineName: textOr(rec, entities.DefaultAirlineName, flatAirline...),
		Type:        textOr(rec, entities.DefaultAircraftType, flatType...),
	}
}

// field resolves a nested object through its alias chain and reads one field
// from it. A resolved value that is not an object yields the fallback.
func field(rec map[string]any, chain []accessor, name, fallback string) string {
	v, ok := resolve(rec, chain...)
	if !ok {
		return fallback
	}
	sub, _ := v.(map[string]any)
	return textOr(sub, fallback, key(name))
}

// Gate normalizes a raw gate record. When no code-like field exists the code
// falls back to the rendered record.
func Gate(raw any) (entities.Gate, bool) {
	rec, ok := record(raw)
	if !ok {
		return entities.Gate{}, false
	}

	id, _ := resolve(rec, gateID...)

	return entities.Gate{
		ID:   entities.NewID(id),
		Code: textOr(rec, text(rec), gateCode...),
	}, true
}

// Airport normalizes a raw airport record. The name falls back to the
// rendered record; the code falls back to empty.
func Airport(raw any) (entities.Airport, bool) {
	rec, ok := record(raw)
	if !ok {
		return entities.Airport{}, false
	}

	id, _ := resolve(rec, airportID...)

	return entities.Airport{
		ID:   entities.NewID(id),
		Name: textOr(rec, text(rec), airportName...),
		Code: textOr(rec, "", airportCode...),
	}, true
}
