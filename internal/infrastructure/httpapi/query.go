package httpapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Query holds request query parameters. Slice values are sent as repeated
// keys; nil and Omit values are left out.
type Query map[string]any

// EncodeQuery serializes q deterministically: keys are sorted, slice values
// become repeated same-key entries in element order, and nil or Omit values
// (including slice elements) are omitted.
func EncodeQuery(q Query) string {
	if len(q) == 0 {
		return ""
	}

	values := url.Values{}
	for k, v := range q {
		if v == nil || isOmit(v) {
			continue
		}

		rv := reflect.ValueOf(v)
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < rv.Len(); i++ {
				if s, ok := queryValue(rv.Index(i).Interface()); ok {
					values.Add(k, s)
				}
			}
			continue
		}

		if s, ok := queryValue(v); ok {
			values.Set(k, s)
		}
	}

	return values.Encode()
}

func queryValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil, omitted:
		return "", false
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case []byte:
		return string(val), true
	case fmt.Stringer:
		s := val.String()
		return s, s != ""
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	default:
		return fmt.Sprint(val), true
	}
}
