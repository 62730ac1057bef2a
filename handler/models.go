package handler

// StatusReceived is the acknowledgement status for an accepted payload.
const StatusReceived = "received"

// URLPayload represents the expected JSON structure of a POST /process_url body.
type URLPayload struct {
	URLs map[string]any `json:"urls"`
}

// Acknowledgement is the fixed response body for an accepted payload.
type Acknowledgement struct {
	Status string `json:"status"`
}

// ValidationError describes a single schema violation. Loc is the path to the
// offending element, starting at "body".
type ValidationError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationResponse is the body of a 422 response.
type ValidationResponse struct {
	Detail []ValidationError `json:"detail"`
}
