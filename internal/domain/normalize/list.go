package normalize

import "github.com/ersonp/flightdesk/internal/domain/entities"

// Flights normalizes a decoded list, dropping entries that are not objects.
// Input that is not a list yields an empty slice.
func Flights(list any) []entities.Flight {
	return each(list, Flight)
}

// Gates normalizes a decoded list of gates.
func Gates(list any) []entities.Gate {
	return each(list, Gate)
}

// Airports normalizes a decoded list of airports.
func Airports(list any) []entities.Airport {
	return each(list, Airport)
}

func each[T any](list any, fn func(any) (T, bool)) []T {
	items, _ := list.([]any)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if v, ok := fn(item); ok {
			out = append(out, v)
		}
	}
	return out
}
