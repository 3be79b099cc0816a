package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Response is a completed 2xx call.
type Response struct {
	StatusCode int
	Header     http.Header
	// Body is the raw response body.
	Body []byte
	// Data is the decoded body: a JSON value with numbers kept as
	// json.Number, or the raw text when the body is not JSON. A 204 with an
	// empty body decodes to nil; any other empty body decodes to "".
	Data any
}

func newResponse(status int, header http.Header, body []byte) *Response {
	return &Response{
		StatusCode: status,
		Header:     header,
		Body:       body,
		Data:       decodeBody(status, body),
	}
}

func decodeBody(status int, body []byte) any {
	if len(body) == 0 {
		if status == http.StatusNoContent {
			return nil
		}
		return ""
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return string(body)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return string(body)
	}
	return v
}

// Decode unmarshals the raw body into v. An empty body leaves v unchanged.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
