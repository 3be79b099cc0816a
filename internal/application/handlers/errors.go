package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/ersonp/flightdesk/internal/domain/services"
	"github.com/ersonp/flightdesk/internal/infrastructure/httpapi"
)

// OperationError is a failed use case. Message is the operator-facing text;
// Err is the underlying failure.
type OperationError struct {
	Message string
	// Detail is an explanation derived from the failure, empty when it adds
	// nothing to Message.
	Detail string
	Err    error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Fallback messages shown when a failure carries no better explanation.
const (
	MsgFetchFlights    = "Error fetching flights. Please try again later."
	MsgFetchArrivals   = "Error fetching arrivals. Please try again later."
	MsgFetchDepartures = "Error fetching departures. Please try again later."
	MsgFetchGates      = "Failed to fetch gates."
	MsgFetchAirports   = "Failed to fetch airports."
	MsgSaveFlight      = "Failed to save flight. Please check your input."
	MsgDeleteFlight    = "Failed to delete flight."
	MsgSaveGate        = "Failed to save gate."
	MsgDeleteGate      = "Failed to delete gate."
	MsgSaveAirport     = "Failed to save airport."
	MsgDeleteAirport   = "Failed to delete airport."
	MsgGeneric         = "Something went wrong."
)

const msgContentType = "Server rejected the content type. (Expected JSON)"

var (
	reConstraint = regexp.MustCompile(`(?i)constraint|foreign key|in use|duplicate|unique`)
	reIntegrity  = regexp.MustCompile(`(?i)constraint|foreign key|integrity`)
	reDuplicate  = regexp.MustCompile(`(?i)duplicate|unique`)
	reAirport    = regexp.MustCompile(`(?i)airport`)
	reGate       = regexp.MustCompile(`(?i)gate`)
)

// Message extracts the best operator-facing text from err: the body's
// "message" field, then its "error" field, then a plain-text body, then the
// error's own text, then fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if apiErr, ok := httpapi.AsError(err); ok {
		if rec, ok := apiErr.Data.(map[string]any); ok {
			for _, key := range []string{"message", "error"} {
				if s := nonEmpty(rec[key]); s != "" {
					return s
				}
			}
		}
		if s, ok := apiErr.Data.(string); ok && s != "" {
			return s
		}
	}
	if s := errText(err); s != "" {
		return s
	}
	return fallback
}

// Explain maps a failure onto guidance: content-type rejections, then
// integrity violations (by status 409 or by constraint vocabulary in the
// body), then the error's own text, then fallback.
func Explain(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	status := httpapi.StatusCode(err)
	body := bodyText(err)

	if status == http.StatusUnsupportedMediaType {
		return "Server expects JSON (Content-Type: application/json)."
	}
	if status == http.StatusConflict || reConstraint.MatchString(body) {
		switch {
		case reAirport.MatchString(body):
			return "Airport is in use (has gates/aircraft/flights). Remove them first."
		case reGate.MatchString(body):
			return "Gate is in use (assigned to flights). Unassign first."
		default:
			return "Operation violates database constraints."
		}
	}
	if s := errText(err); s != "" {
		return s
	}
	return fallback
}

// ExplainFlightSave translates a failed flight create or update.
func ExplainFlightSave(err error) string {
	return Message(err, MsgSaveFlight)
}

// ExplainFlightDelete translates a failed flight delete.
func ExplainFlightDelete(err error) string {
	if reIntegrity.MatchString(bodyText(err)) {
		return "Cannot delete flight: it references related entities."
	}
	return Message(err, MsgDeleteFlight)
}

// ExplainGateSave translates a failed gate create or update.
func ExplainGateSave(err error) string {
	status := httpapi.StatusCode(err)
	body := bodyText(err)
	switch {
	case status == http.StatusConflict || reDuplicate.MatchString(body):
		return "Gate code must be unique."
	case reIntegrity.MatchString(body):
		return "Cannot modify gate: it's referenced by one or more flights."
	case status == http.StatusUnsupportedMediaType:
		return msgContentType
	default:
		return Message(err, MsgSaveGate)
	}
}

// ExplainGateDelete translates a failed gate delete.
func ExplainGateDelete(err error) string {
	if reIntegrity.MatchString(bodyText(err)) {
		return "Cannot delete gate: it's assigned to one or more flights."
	}
	return Message(err, MsgDeleteGate)
}

// ExplainAirportSave translates a failed airport create or update.
func ExplainAirportSave(err error) string {
	status := httpapi.StatusCode(err)
	switch {
	case status == http.StatusConflict || reDuplicate.MatchString(bodyText(err)):
		return "Airport name must be unique."
	case status == http.StatusUnsupportedMediaType:
		return msgContentType
	default:
		return Message(err, MsgSaveAirport)
	}
}

// ExplainAirportDelete translates a failed airport delete.
func ExplainAirportDelete(err error) string {
	if reIntegrity.MatchString(bodyText(err)) {
		return "Cannot delete airport: it's referenced by gates or flights."
	}
	return Message(err, MsgDeleteAirport)
}

// fail wraps err for the operator. Validation failures pass through
// unchanged since their text is already operator-facing.
func fail(err error, explain func(error) string) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	msg := explain(err)
	detail := Explain(err, "")
	if detail == msg {
		detail = ""
	}
	return &OperationError{Message: msg, Detail: detail, Err: err}
}

// fixed returns an explainer that always yields msg.
func fixed(msg string) func(error) string {
	return func(error) string { return msg }
}

// bodyText is the response body as received, or "" when there is none.
func bodyText(err error) string {
	if apiErr, ok := httpapi.AsError(err); ok {
		return apiErr.BodyText()
	}
	return ""
}

// errText renders a failure without leaking request internals.
func errText(err error) string {
	apiErr, ok := httpapi.AsError(err)
	switch {
	case !ok:
		return err.Error()
	case apiErr.StatusCode != 0:
		return fmt.Sprintf("Request failed with status code %d", apiErr.StatusCode)
	case apiErr.Timeout():
		return "Request timed out."
	default:
		return "Network error: the backend could not be reached."
	}
}

// nonEmpty renders a body field as text. Blank strings, false and zero
// numbers count as absent.
func nonEmpty(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return ""
		}
	default:
		if reflect.ValueOf(val).IsZero() {
			return ""
		}
	}
	return fmt.Sprint(v)
}
