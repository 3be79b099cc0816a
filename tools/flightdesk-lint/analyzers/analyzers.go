// Package analyzers provides all custom static analyzers for flightdesk.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/flightdesk/tools/flightdesk-lint/analyzers/ctxroot"
	"github.com/ersonp/flightdesk/tools/flightdesk-lint/analyzers/rawhttp"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		rawhttp.Analyzer,
		ctxroot.Analyzer,
	}
}
