// Package entities contains core domain data structures.
package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is an opaque backend identifier. The backend may send numeric or string
// identifiers; both round-trip unchanged. The zero value means the record has
// not been persisted or its identifier could not be determined.
type ID struct {
	value   string
	numeric bool
}

// NewID converts a decoded JSON value into an ID. Nil and unsupported values
// yield the zero ID.
func NewID(v any) ID {
	switch val := v.(type) {
	case nil:
		return ID{}
	case ID:
		return val
	case json.Number:
		return ID{value: val.String(), numeric: true}
	case string:
		return ID{value: val}
	case float64:
		return ID{value: strconv.FormatFloat(val, 'f', -1, 64), numeric: true}
	case int:
		return ID{value: strconv.Itoa(val), numeric: true}
	case int64:
		return ID{value: strconv.FormatInt(val, 10), numeric: true}
	case bool:
		return ID{value: strconv.FormatBool(val)}
	default:
		return ID{}
	}
}

// ParseID parses a user-supplied identifier, such as a CLI argument.
// Integers are kept numeric so they marshal as JSON numbers.
func ParseID(s string) ID {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return ID{value: s, numeric: true}
	}
	return ID{value: s}
}

// IsZero reports whether the identifier is absent.
func (id ID) IsZero() bool {
	return id.value == ""
}

// String returns the identifier text, or an empty string when absent.
func (id ID) String() string {
	return id.value
}

// Equal reports whether two identifiers refer to the same record.
func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

// MarshalJSON encodes the zero ID as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts numbers, strings, and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decoding id: %w", err)
	}

	switch v.(type) {
	case json.Number, string:
		*id = NewID(v)
		return nil
	default:
		return fmt.Errorf("unsupported id value %s", data)
	}
}

// MarshalYAML lets config files store identifiers as plain scalars.
func (id ID) MarshalYAML() (any, error) {
	if id.IsZero() {
		return "", nil
	}
	return id.value, nil
}

// UnmarshalYAML reads an identifier scalar.
func (id *ID) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*id = ParseID(s)
	return nil
}

// MarshalText renders the identifier for text formats such as CSV.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}

// UnmarshalText parses an identifier from text formats such as CSV.
func (id *ID) UnmarshalText(data []byte) error {
	*id = ParseID(string(data))
	return nil
}
