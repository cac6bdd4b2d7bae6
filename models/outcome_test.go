package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeConstructors(t *testing.T) {
	home := Redirect(PathHome)
	assert.Equal(t, OutcomeRedirect, home.Kind)
	assert.True(t, home.IsRedirect(PathHome))
	assert.False(t, home.IsRedirect(PathLogin))

	resp := &Response{StatusCode: http.StatusOK}
	got := RespondWith(resp)
	assert.Equal(t, OutcomeResponse, got.Kind)
	assert.Same(t, resp, got.Response)
	assert.False(t, got.IsRedirect(PathHome))

	failed := ShowError("Login failed")
	assert.Equal(t, OutcomeError, failed.Kind)
	assert.Equal(t, "Login failed", failed.Message)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "redirect", OutcomeRedirect.String())
	assert.Equal(t, "response", OutcomeResponse.String())
	assert.Equal(t, "error", OutcomeError.String())
}

func TestErrorBody_Message(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{name: "string", detail: `"bad creds"`, want: "bad creds"},
		{name: "list", detail: `[{"msg":"field required"}]`, want: ""},
		{name: "missing", detail: ``, want: ""},
		{name: "null", detail: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorBody{Detail: []byte(tt.detail)}.Message())
		})
	}
}
