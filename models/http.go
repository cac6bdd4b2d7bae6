package models

import "net/http"

// Request describes an outgoing authenticated request. The bearer token is
// not part of it: the session client injects it.
type Request struct {
	// URL is either absolute or a path resolved against the configured
	// server address.
	URL string

	// Method defaults to GET when empty.
	Method string

	// Header holds caller-supplied headers. An Authorization entry is always
	// replaced by the token-derived value.
	Header http.Header

	// Body is sent as-is when non-nil.
	Body []byte
}
