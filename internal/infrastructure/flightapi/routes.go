package flightapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

// RouteStyle selects the entity path convention of a deployment.
type RouteStyle string

const (
	// RoutePlural addresses entities as /airports, /gates and /flights.
	RoutePlural RouteStyle = "plural"
	// RouteSingular addresses entities as /airport, /gate and /flight.
	RouteSingular RouteStyle = "singular"
)

// ParseRouteStyle validates a configured route style. Empty means plural.
func ParseRouteStyle(s string) (RouteStyle, error) {
	switch RouteStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoutePlural:
		return RoutePlural, nil
	case RouteSingular:
		return RouteSingular, nil
	default:
		return "", fmt.Errorf("unknown route style %q (want %q or %q)", s, RoutePlural, RouteSingular)
	}
}

const (
	pathFlightList = "/flights"
	pathArrivals   = "/arrivals"
	pathDepartures = "/departures"
)

// routes resolves entity paths for one style.
type routes struct {
	flights  string
	gates    string
	airports string
}

func routesFor(style RouteStyle) routes {
	if style == RouteSingular {
		return routes{flights: "/flight", gates: "/gate", airports: "/airport"}
	}
	return routes{flights: "/flights", gates: "/gates", airports: "/airports"}
}

func item(collection string, id entities.ID) string {
	return collection + "/" + url.PathEscape(id.String())
}
