package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/flightdesk/internal/domain/services"
	"github.com/ersonp/flightdesk/internal/infrastructure/parsers"
)

// ImportHandler handles importing flights from files.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{
		service: service,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format string // "json", "csv", or "auto"
	DryRun bool   // Validate without sending
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Rows     int
	Imported int
	Errors   []services.ImportError
}

// Handle imports flights from a file. Backend failures on individual rows are
// reported with the same explanation a single create would get.
func (h *ImportHandler) Handle(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	rows, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	if len(rows) == 0 {
		return &ImportResult{}, nil
	}

	serviceResult, err := h.service.Import(ctx, rows, services.ImportOptions{DryRun: opts.DryRun})
	if err != nil {
		return nil, err
	}

	for i := range serviceResult.Errors {
		if rowErr := serviceResult.Errors[i].Err; rowErr != nil {
			serviceResult.Errors[i].Message = ExplainFlightSave(rowErr)
		}
	}

	return &ImportResult{
		Rows:     len(rows),
		Imported: serviceResult.Imported,
		Errors:   serviceResult.Errors,
	}, nil
}
