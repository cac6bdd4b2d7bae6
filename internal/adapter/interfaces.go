// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the ERP backend.
//
// The primary abstraction is [ServerAdapter], which decouples the session
// client from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses of the login endpoint are mapped by mapHTTPError to a
// [*StatusError] that wraps one of the sentinel values in errors.go, so that
// callers can use [errors.Is] (e.g. [ErrBadRequest] for 400) and
// [errors.As] to read the server-provided detail. A non-JSON error body also
// matches [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/saeedstore/erp-session/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the ERP backend.
type ServerAdapter interface {
	// RequestAccessToken exchanges credentials for an access token by posting
	// them form-encoded to the login endpoint. A non-2xx response yields a
	// [*StatusError], which also matches [ErrMalformedResponse] when its body
	// is not JSON. A 2xx response whose body has no access_token yields
	// [ErrMalformedResponse]. A transport failure is returned wrapped as is.
	RequestAccessToken(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// Do sends req and returns the response whatever its status code. Only
	// transport failures are reported as errors.
	Do(ctx context.Context, req models.Request) (models.Response, error)
}
