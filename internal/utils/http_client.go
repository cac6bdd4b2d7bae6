package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient bound to baseURL.
//
// A zero timeout leaves requests without a deadline; callers that need one
// should pass a context with a deadline instead.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 0)
//	resp, err := client.R().Get("/api/v1/users/me")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &HTTPClient{Client: client}
}
