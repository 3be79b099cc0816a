package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// accessor is one attempt at resolving a field from a raw record.
// It reports false when the record does not carry a usable value.
type accessor func(rec map[string]any) (any, bool)

// key resolves a field that is present and non-null.
func key(name string) accessor {
	return func(rec map[string]any) (any, bool) {
		v, ok := rec[name]
		if !ok || v == nil {
			return nil, false
		}
		return v, true
	}
}

// truthyKey resolves a field only when its value is truthy, so empty strings,
// zero and false fall through to the next attempt.
func truthyKey(name string) accessor {
	return func(rec map[string]any) (any, bool) {
		v, ok := rec[name]
		if !ok || !truthy(v) {
			return nil, false
		}
		return v, true
	}
}

// keys builds one accessor per field name, preserving order.
func keys(names ...string) []accessor {
	out := make([]accessor, len(names))
	for i, name := range names {
		out[i] = key(name)
	}
	return out
}

// resolve returns the first value produced by the attempts, in order.
func resolve(rec map[string]any, attempts ...accessor) (any, bool) {
	for _, attempt := range attempts {
		if v, ok := attempt(rec); ok {
			return v, true
		}
	}
	return nil, false
}

// textOr resolves a field and renders it as text, or returns fallback.
func textOr(rec map[string]any, fallback string, attempts ...accessor) string {
	if v, ok := resolve(rec, attempts...); ok {
		return text(v)
	}
	return fallback
}

// record reports whether raw is a JSON object and returns it.
func record(raw any) (map[string]any, bool) {
	rec, ok := raw.(map[string]any)
	if !ok || rec == nil {
		return nil, false
	}
	return rec, true
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	default:
		return true
	}
}

// text renders a decoded JSON value as a string. Objects and arrays render
// as compact JSON.
func text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimSpace(string(data))
	}
}
