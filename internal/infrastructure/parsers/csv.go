package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
)

// Columns lists the CSV header written by exports and required by imports,
// gate_id excepted.
var Columns = []string{"airline_name", "aircraft_type", "departure_airport_id", "arrival_airport_id", "gate_id"}

var requiredColumns = []string{"airline_name", "aircraft_type", "departure_airport_id", "arrival_airport_id"}

// CSVParser parses flight rows from CSV with a header line.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed rows.
func (p *CSVParser) Parse(r io.Reader) ([]RawFlight, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	decoder, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("reading CSV header: empty input")
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	if err := checkHeader(decoder.Header()); err != nil {
		return nil, err
	}

	return p.readRecords(decoder)
}

func checkHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}
	return nil
}

// readRecords decodes data rows one at a time so each keeps its line number.
func (p *CSVParser) readRecords(decoder *csvutil.Decoder) ([]RawFlight, error) {
	rows := []RawFlight{}
	lineNum := 1 // header

	for {
		lineNum++
		var row RawFlight
		err := decoder.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		row.LineNum = lineNum
		rows = append(rows, row)
	}

	return rows, nil
}
