package models

import (
	"encoding/json"
	"net/http"
)

// Response is the raw result of an authenticated request. The body is fully
// read; interpreting it is up to the caller.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ErrorBody is the JSON body the server returns on failure.
//
// Detail is kept raw because validation errors carry a list instead of a
// string; only a string detail is shown to the user.
type ErrorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// Message returns the detail as a string, or "" when detail is missing or is
// not a JSON string.
func (e ErrorBody) Message() string {
	if len(e.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(e.Detail, &s); err != nil {
		return ""
	}
	return s
}
