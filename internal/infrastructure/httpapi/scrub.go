package httpapi

import (
	"bytes"
	"encoding"
	"encoding/json"
	"io"
	"reflect"
	"strings"
	"time"
)

type omitted struct{}

// MarshalJSON encodes a stray marker as null.
func (omitted) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Omit marks a value that was never set. Inside a map the key is dropped from
// the request body; inside a slice the element is sent as null; in a query
// the parameter is left out.
var Omit = omitted{}

func isOmit(v any) bool {
	_, ok := v.(omitted)
	return ok
}

// Scrub prepares a JSON request body for transmission. Keys set to Omit are
// dropped, Omit slice elements and empty strings become null, and nested maps
// and slices are scrubbed recursively. Times, raw JSON, byte slices and
// readers are returned untouched. Typed maps, slices and structs are walked
// field by field, so Omit nested inside them is honoured; values with their
// own JSON or text encoding are lowered through that encoding.
//
// Scrub never modifies its input and Scrub(Scrub(v)) equals Scrub(v).
func Scrub(v any) any {
	switch val := v.(type) {
	case nil, omitted:
		return val
	case time.Time, *time.Time, json.RawMessage, []byte, io.Reader:
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if isOmit(item) {
				continue
			}
			out[k] = Scrub(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			if isOmit(item) {
				continue
			}
			out[i] = Scrub(item)
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return val
	case json.Number:
		return val
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if _, ok := v.(json.Marshaler); !ok {
			return v
		}
	case reflect.String:
		if _, ok := v.(json.Marshaler); !ok {
			if rv.Len() == 0 {
				return nil
			}
			return v
		}
	}

	if !hasEncoding(v) {
		if tree, ok := walk(rv); ok {
			return Scrub(tree)
		}
	}

	tree, err := lower(v)
	if err != nil {
		return v
	}
	return Scrub(tree)
}

func hasEncoding(v any) bool {
	switch v.(type) {
	case json.Marshaler, encoding.TextMarshaler:
		return true
	}
	return false
}

// walk unwraps one level of a typed container into map[string]any or []any,
// leaving the elements typed. It reports false for shapes only encoding/json
// knows how to render.
func walk(rv reflect.Value) (any, bool) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, true
		}
		return rv.Elem().Interface(), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		if rv.IsNil() {
			return nil, true
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		if rv.IsNil() {
			return nil, true
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.Struct:
		out := make(map[string]any, rv.NumField())
		if !structFields(rv, out) {
			return nil, false
		}
		return out, true
	}
	return nil, false
}

// structFields collects the fields encoding/json would emit, keyed by their
// JSON names. Embedded structs without a tag are inlined; names set by the
// outer struct win.
func structFields(rv reflect.Value, out map[string]any) bool {
	t := rv.Type()
	var embedded []reflect.Value

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		fv := rv.Field(i)

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if !f.IsExported() {
					return false
				}
				if fv.Kind() == reflect.Pointer {
					if fv.IsNil() {
						continue
					}
					fv = fv.Elem()
				}
				if hasEncoding(fv.Interface()) {
					return false
				}
				embedded = append(embedded, fv)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if hasOption(opts, "string") {
			return false
		}
		if hasOption(opts, "omitempty") && isEmptyValue(fv) {
			continue
		}
		if hasOption(opts, "omitzero") && fv.IsZero() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = fv.Interface()
	}

	for _, ev := range embedded {
		inner := make(map[string]any, ev.NumField())
		if !structFields(ev, inner) {
			return false
		}
		for k, item := range inner {
			if _, ok := out[k]; !ok {
				out[k] = item
			}
		}
	}
	return true
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

// isEmptyValue mirrors the omitempty rule of encoding/json.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

// lower converts a typed value into the generic tree encoding/json would
// decode it into, keeping numbers as json.Number.
func lower(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}
