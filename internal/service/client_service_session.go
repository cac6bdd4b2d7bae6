package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/saeedstore/erp-session/internal/adapter"
	"github.com/saeedstore/erp-session/internal/app"
	"github.com/saeedstore/erp-session/internal/logger"
	"github.com/saeedstore/erp-session/internal/store"
	"github.com/saeedstore/erp-session/internal/utils"
	"github.com/saeedstore/erp-session/models"
)

type sessionClient struct {
	tokens  store.TokenStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewSessionClient returns a [SessionClient] keeping its token in tokens and
// talking to the backend through serverAdapter.
func NewSessionClient(tokens store.TokenStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionClient {
	return &sessionClient{tokens: tokens, adapter: serverAdapter, logger: logger}
}

func (s *sessionClient) IsAuthenticated(ctx context.Context) bool {
	_, err := s.tokens.Token(ctx)
	if err == nil {
		return true
	}

	if !errors.Is(err, store.ErrTokenNotFound) {
		s.logger.Err(err).Str("func", "sessionClient.IsAuthenticated").Msg("failed to read access token")
	}
	return false
}

func (s *sessionClient) Login(ctx context.Context, identifier, secret string) models.Outcome {
	token, err := s.adapter.RequestAccessToken(ctx, models.Credentials{Identifier: identifier, Secret: secret})
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "sessionClient.Login").Msg("login failed")
		return models.ShowError(loginErrorMessage(err))
	}

	if err = s.tokens.SetToken(ctx, token.AccessToken); err != nil {
		s.logger.Err(err).Str("func", "sessionClient.Login").Msg("failed to store access token")
		return models.ShowError(app.MsgSessionNotSaved)
	}

	s.logger.Info().Str("func", "sessionClient.Login").Msg("logged in")
	return models.Redirect(models.PathHome)
}

func (s *sessionClient) Logout(ctx context.Context) (models.Outcome, error) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "sessionClient.Logout").Msg("failed to remove access token")
		return models.Redirect(models.PathLogin), fmt.Errorf("logout: %w", err)
	}

	s.logger.Info().Str("func", "sessionClient.Logout").Msg("logged out")
	return models.Redirect(models.PathLogin), nil
}

func (s *sessionClient) AuthenticatedRequest(ctx context.Context, req models.Request) (models.Outcome, error) {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx, _ = s.logger.WithTraceID(ctx, traceID)
	}

	token, err := s.tokens.Token(ctx)
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.Redirect(models.PathLogin), nil
	}
	if err != nil {
		return models.Outcome{}, fmt.Errorf("authenticated request: %w", err)
	}

	req.Header = withBearer(req.Header, token)

	resp, err := s.adapter.Do(ctx, req)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("authenticated request: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		s.logger.Info().
			Str("func", "sessionClient.AuthenticatedRequest").
			Str("url", req.URL).
			Msg("session rejected by server, logging out")
		return s.Logout(ctx)
	}

	return models.RespondWith(&resp), nil
}

// withBearer returns a copy of header whose only Authorization value is the
// bearer token. Caller entries are matched case-insensitively.
func withBearer(header http.Header, token string) http.Header {
	out := make(http.Header, len(header)+1)
	for key, values := range header {
		if http.CanonicalHeaderKey(key) == "Authorization" {
			continue
		}
		out[key] = append([]string(nil), values...)
	}
	out.Set("Authorization", "Bearer "+token)
	return out
}
