package entities

// Gate is the canonical gate record.
type Gate struct {
	ID   ID     `json:"id"`
	Code string `json:"code"`
}

// GateInput is the payload sent when creating or updating a gate.
type GateInput struct {
	Code    string `json:"code"`
	Airport Ref    `json:"airport"`
}
