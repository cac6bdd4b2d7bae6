package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/saeedstore/erp-session/internal/config"
	"github.com/saeedstore/erp-session/internal/logger"
	"github.com/saeedstore/erp-session/internal/utils"
	"github.com/saeedstore/erp-session/models"
)

const (
	loginPath       = "/login/access-token"
	formContentType = "application/x-www-form-urlencoded;charset=UTF-8"
	traceIDHeader   = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	loginURL string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and joins
// cfg.APIPrefix with the login path.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		loginURL: joinAPIPath(cfg.APIPrefix, loginPath),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func joinAPIPath(prefix, path string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return path
	}
	return "/" + prefix + path
}

// RequestAccessToken implements [ServerAdapter]. It POSTs
// username=<identifier>&password=<secret> to {prefix}/login/access-token with
// a fresh X-Trace-ID header and decodes the token from the JSON body.
func (h *httpServerAdapter) RequestAccessToken(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	traceID := utils.NewTraceID()
	ctx, log := h.logger.WithTraceID(utils.WithTraceID(ctx, traceID), traceID)

	body := utils.EncodeForm(
		utils.FormField{Key: "username", Value: creds.Identifier},
		utils.FormField{Key: "password", Value: creds.Secret},
	)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", formContentType).
		SetHeader(traceIDHeader, traceID).
		SetBody(body).
		Post(h.loginURL)
	if err != nil {
		log.Err(err).Str("func", "httpServerAdapter.RequestAccessToken").Msg("login request failed")
		return models.AccessToken{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		log.Debug().
			Str("func", "httpServerAdapter.RequestAccessToken").
			Int("status", resp.StatusCode()).
			Msg("login rejected")
		return models.AccessToken{}, err
	}

	var token models.AccessToken
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		log.Err(err).Str("func", "httpServerAdapter.RequestAccessToken").Msg("failed to decode login response")
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		log.Error().Str("func", "httpServerAdapter.RequestAccessToken").Msg("login response has no access_token")
		return models.AccessToken{}, fmt.Errorf("%w: missing access_token", ErrMalformedResponse)
	}

	log.Debug().Str("func", "httpServerAdapter.RequestAccessToken").Msg("access token received")
	return token, nil
}

// Do implements [ServerAdapter]. Relative URLs are resolved against the
// configured base URL; absolute ones are used unchanged. Headers are copied
// so that req is never mutated. A trace id carried by ctx is sent as
// X-Trace-ID unless the caller set one.
func (h *httpServerAdapter) Do(ctx context.Context, req models.Request) (models.Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	r := h.client.R().SetContext(ctx)
	for key, values := range req.Header {
		for _, v := range values {
			r.Header.Add(key, v)
		}
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok && r.Header.Get(traceIDHeader) == "" {
		r.SetHeader(traceIDHeader, traceID)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(method, req.URL)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter.Do").
			Str("method", method).
			Str("url", req.URL).
			Msg("request failed")
		return models.Response{}, fmt.Errorf("%s %s: %w", method, req.URL, err)
	}

	return models.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header().Clone(),
		Body:       resp.Body(),
	}, nil
}
