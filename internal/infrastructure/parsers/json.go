package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses flight rows from a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed rows.
func (p *JSONParser) Parse(r io.Reader) ([]RawFlight, error) {
	var rows []RawFlight

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if rows == nil {
		rows = []RawFlight{}
	}

	// Array index + 1
	for i := range rows {
		rows[i].LineNum = i + 1
	}

	return rows, nil
}
