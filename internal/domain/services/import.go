package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/flightdesk/internal/domain/entities"
	"github.com/ersonp/flightdesk/internal/domain/normalize"
	"github.com/ersonp/flightdesk/internal/domain/ports"
	"github.com/ersonp/flightdesk/internal/infrastructure/parsers"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool // Validate without sending
}

// ImportError represents an error for a specific row during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Field   string // Which field has the error, empty for backend failures
	Message string // Human-readable error message
	Err     error  // Backend failure, nil for validation errors
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e ImportError) Unwrap() error {
	return e.Err
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Created  []entities.ID
	Errors   []ImportError
}

// ImportService bulk-creates flights from parsed rows.
type ImportService struct {
	backend ports.FlightBackend
}

// NewImportService creates a new import service.
func NewImportService(backend ports.FlightBackend) *ImportService {
	return &ImportService{backend: backend}
}

// Import validates every row and creates the valid ones one at a time. Row
// failures are collected without stopping the import; only cancellation
// aborts it.
func (s *ImportService) Import(ctx context.Context, rows []parsers.RawFlight, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	valid, validationErrors := validateRows(rows)
	result.Errors = validationErrors

	if opts.DryRun {
		result.Imported = len(valid)
		return result, nil
	}

	for _, row := range valid {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("importing flights: %w", err)
		}

		reply, err := s.backend.CreateFlight(ctx, row.input)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return result, fmt.Errorf("importing flights: %w", err)
			}
			result.Errors = append(result.Errors, ImportError{Line: row.line, Message: err.Error(), Err: err})
			continue
		}

		result.Imported++
		if id := createdFlightID(reply); !id.IsZero() {
			result.Created = append(result.Created, id)
		}
	}

	return result, nil
}

type validRow struct {
	line  int
	input entities.FlightInput
}

// validateRows validates raw rows and returns valid ones with any errors.
func validateRows(rows []parsers.RawFlight) ([]validRow, []ImportError) {
	valid := make([]validRow, 0, len(rows))
	var errs []ImportError

	for i := range rows {
		lineNum := rows[i].LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		in := cleanFlight(rows[i].Input())
		if err := ValidateFlight(in); err != nil {
			ie := ImportError{Line: lineNum, Message: err.Error()}
			var verr *ValidationError
			if errors.As(err, &verr) {
				ie.Field = verr.Field
			}
			errs = append(errs, ie)
			continue
		}

		valid = append(valid, validRow{line: lineNum, input: in})
	}

	return valid, errs
}

func createdFlightID(reply any) entities.ID {
	created, _ := normalize.Flight(reply)
	return created.ID
}
