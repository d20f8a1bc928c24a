package server

// ConvertResponse is the body of a successful GET /convert.
type ConvertResponse struct {
	Scheme   string `json:"scheme"`
	Raw      int64  `json:"raw"`
	DateTime string `json:"datetime"`
	RFC3339  string `json:"rfc3339"`
	Fallback bool   `json:"fallback,omitempty"`
	Error    string `json:"error,omitempty"` // set with Fallback
}

// EncodeResponse is the body of a successful GET /encode.
type EncodeResponse struct {
	Scheme string `json:"scheme"`
	Raw    int64  `json:"raw"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"` // overflow or out_of_range on 422
}
