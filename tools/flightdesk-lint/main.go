// flightdesk-lint is a custom static analyzer for flightdesk call-surface rules.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/flightdesk/tools/flightdesk-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
