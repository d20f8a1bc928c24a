package types

import (
	"time"

	"epochs/internal/epoch"
)

// Decoded is a rendered conversion result.
//
// When Fallback is set the conversion failed, Err holds the reason and Time is
// the scheme origin shown in its place.
type Decoded struct {
	Scheme   epoch.Scheme
	Raw      int64
	Time     time.Time
	Text     string
	Fallback bool
	Err      error
}

// SchemeInfo describes a scheme for selectors and listings.
type SchemeInfo struct {
	Name   string    `json:"name"`
	Label  string    `json:"label"`
	Unit   string    `json:"unit"`
	Origin time.Time `json:"origin"`
}

// BatchReport counts the outcome of a batch decode.
type BatchReport struct {
	Lines   int `json:"lines"`
	Decoded int `json:"decoded"`
	Failed  int `json:"failed"`
}
