package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error is a failed call. Transport failures (timeout, refused connection,
// DNS) have a zero StatusCode and a non-nil Err; non-2xx responses carry the
// status and the body as received.
type Error struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	Data       any
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: request failed with status code %d", e.Method, e.URL, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call failed because its deadline expired.
func (e *Error) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// BodyText returns the response body as text, or "" for transport failures.
func (e *Error) BodyText() string {
	if s, ok := e.Data.(string); ok {
		return s
	}
	return string(e.Body)
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0 when there is none.
func StatusCode(err error) int {
	if apiErr, ok := AsError(err); ok {
		return apiErr.StatusCode
	}
	return 0
}
