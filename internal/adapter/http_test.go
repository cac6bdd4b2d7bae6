// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saeedstore/erp-session/internal/config"
	"github.com/saeedstore/erp-session/internal/logger"
	"github.com/saeedstore/erp-session/internal/utils"
	"github.com/saeedstore/erp-session/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, APIPrefix: "/api/v1"}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// newLoginServer mounts handler on the login route of a chi router.
func newLoginServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/api/v1/login/access-token", handler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// ── RequestAccessToken ──────────────────────────────────────────────────────

func TestRequestAccessToken_Success(t *testing.T) {
	srv := newLoginServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded;charset=UTF-8", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "username=a%20b&password=p%26q", string(raw))

		traceID, err := uuid.Parse(r.Header.Get("X-Trace-ID"))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), traceID.Version())

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"bearer"}`))
	})

	a := newTestAdapter(t, srv.URL)
	token, err := a.RequestAccessToken(context.Background(), models.Credentials{Identifier: "a b", Secret: "p&q"})

	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestRequestAccessToken_DecodedFormMatches(t *testing.T) {
	srv := newLoginServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "admin@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "s3cr=t+!", r.PostForm.Get("password"))
		_, _ = w.Write([]byte(`{"access_token":"abc"}`))
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestAccessToken(context.Background(), models.Credentials{Identifier: "admin@example.com", Secret: "s3cr=t+!"})
	require.NoError(t, err)
}

func TestRequestAccessToken_RejectedWithDetail(t *testing.T) {
	srv := newLoginServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestAccessToken(context.Background(), models.Credentials{Identifier: "x", Secret: "y"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Incorrect email or password", statusErr.Detail)
}

func TestRequestAccessToken_RejectedWithNonJSONBody(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{name: "proxy html page", status: http.StatusBadGateway, body: "<html>502 Bad Gateway</html>", sentinel: ErrBadGateway},
		{name: "plain text", status: http.StatusInternalServerError, body: "Internal Server Error", sentinel: ErrInternalServerError},
		{name: "empty body", status: http.StatusUnauthorized, body: "", sentinel: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newLoginServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			a := newTestAdapter(t, srv.URL)
			_, err := a.RequestAccessToken(context.Background(), models.Credentials{})

			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.True(t, statusErr.Malformed)
			assert.Empty(t, statusErr.Detail)
		})
	}
}

func TestRequestAccessToken_RejectedJSONWithoutDetail(t *testing.T) {
	srv := newLoginServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestAccessToken(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.False(t, statusErr.Malformed)
	assert.Empty(t, statusErr.Detail)
}

func TestRequestAccessToken_ListDetailIsDropped(t *testing.T) {
	srv := newLoginServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","username"],"msg":"field required"}]}`))
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestAccessToken(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Empty(t, statusErr.Detail)
}

func TestRequestAccessToken_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "ok"},
		{name: "missing token", body: `{"token_type":"bearer"}`},
		{name: "blank token", body: `{"access_token":"  "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newLoginServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			a := newTestAdapter(t, srv.URL)
			_, err := a.RequestAccessToken(context.Background(), models.Credentials{})
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestRequestAccessToken_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a := newTestAdapter(t, addr)
	_, err := a.RequestAccessToken(context.Background(), models.Credentials{})

	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestRequestAccessToken_EmptyPrefix(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login/access-token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"abc"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	token, err := a.RequestAccessToken(context.Background(), models.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
}

// ── Do ──────────────────────────────────────────────────────────────────────

func TestDo_RelativeURLAndHeaders(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "yes", r.Header.Get("X-Custom"))
		w.Header().Set("X-Reply", "1")
		_, _ = w.Write([]byte(`{"email":"admin@example.com"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer abc")
	header.Set("X-Custom", "yes")

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Do(context.Background(), models.Request{URL: "/api/v1/users/me", Header: header})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-Reply"))
	assert.JSONEq(t, `{"email":"admin@example.com"}`, string(resp.Body))
	assert.Equal(t, "Bearer abc", header.Get("Authorization"), "caller headers must not change")
}

func TestDo_AbsoluteURLAndBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/items", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"name":"bolt"}`, string(raw))
		w.WriteHeader(http.StatusCreated)
	})
	other := httptest.NewServer(r)
	defer other.Close()

	a := newTestAdapter(t, "http://127.0.0.1:1")
	resp, err := a.Do(context.Background(), models.Request{
		URL:    other.URL + "/items",
		Method: http.MethodPost,
		Body:   []byte(`{"name":"bolt"}`),
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestDo_ReturnsUnauthorizedWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Do(context.Background(), models.Request{URL: "/api/v1/users/me"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDo_ForwardsTraceIDFromContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace-ID"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-1")
	resp, err := a.Do(ctx, models.Request{URL: "/ping"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a := newTestAdapter(t, addr)
	_, err := a.Do(context.Background(), models.Request{URL: "/api/v1/users/me"})
	assert.Error(t, err)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: " https://erp.example.com/ ", want: "https://erp.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinAPIPath(t *testing.T) {
	assert.Equal(t, "/api/v1/login/access-token", joinAPIPath("/api/v1", loginPath))
	assert.Equal(t, "/api/v1/login/access-token", joinAPIPath("api/v1/", loginPath))
	assert.Equal(t, "/login/access-token", joinAPIPath("", loginPath))
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: " "}, logger.Nop())
	assert.Error(t, err)
}

func TestStatusError_Message(t *testing.T) {
	err := mapHTTPError(http.StatusTeapot, nil)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "418")

	assert.NoError(t, mapHTTPError(http.StatusNoContent, nil))
}

