package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8000", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:8000", 0)
	client2 := NewHTTPClient("http://localhost:8000", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_AppliesSettings(t *testing.T) {
	client := NewHTTPClient("http://example.test", 5*time.Second)

	assert.Equal(t, "http://example.test", client.BaseURL)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_ResolvesRelativePaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ping", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 0)
	resp, err := client.R().Get("/api/v1/ping")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
