package types

import "epochs/internal/epoch"

// DefaultDateTime is what the state shows before anything has been decoded.
const DefaultDateTime = "1970-01-01 00:00:00"

// State is the last input the user decoded, kept across runs.
type State struct {
	Scheme     epoch.Scheme `json:"scheme"`
	Raw        int64        `json:"raw"`
	DateTime   string       `json:"datetime"`
	UpdatedUTC int64        `json:"updated_utc,omitempty"`
}

// DefaultState returns the state of a fresh install: Unix, 0.
func DefaultState() State {
	return State{
		Scheme:   epoch.Unix,
		Raw:      0,
		DateTime: DefaultDateTime,
	}
}
