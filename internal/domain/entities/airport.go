package entities

// Airport is the canonical airport record. Code may be empty.
type Airport struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Label renders the airport for pickers and board headers.
func (a Airport) Label() string {
	if a.Code != "" {
		return a.Code + " - " + a.Name
	}
	return a.Name
}

// AirportInput is the payload sent when creating or updating an airport.
// An empty Code is cleared on the backend.
type AirportInput struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
