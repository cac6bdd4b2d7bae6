package service

import (
	"context"

	"github.com/saeedstore/erp-session/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionClient owns the client's authentication state. It never navigates on
// its own; every operation that may change the visible page returns a
// [models.Outcome] describing where the caller should go.
type SessionClient interface {
	// IsAuthenticated reports whether an access token is stored. It performs
	// no network call; a storage failure is logged and reported as false.
	IsAuthenticated(ctx context.Context) bool

	// Login exchanges identifier and secret for an access token and stores
	// it. It returns a redirect to [models.PathHome] on success and an error
	// outcome carrying a user-facing message otherwise. It never fails with
	// a Go error.
	Login(ctx context.Context, identifier, secret string) models.Outcome

	// Logout deletes the stored token and returns a redirect to
	// [models.PathLogin]. The redirect is returned even when deleting fails;
	// the storage error is reported alongside it.
	Logout(ctx context.Context) (models.Outcome, error)

	// AuthenticatedRequest issues req with the stored token as a bearer
	// credential. Without a token it redirects to [models.PathLogin] without
	// touching the network. A 401 response clears the token and redirects to
	// [models.PathLogin]; any other response is returned as is. Transport
	// and storage read failures are returned as errors.
	AuthenticatedRequest(ctx context.Context, req models.Request) (models.Outcome, error)
}
