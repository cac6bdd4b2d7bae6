// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// TokenKey is the fixed local storage key of the access token.
const TokenKey = "access_token"

// TokenSlot implements [TokenStore] on top of a [LocalStorage], keeping the
// token under [TokenKey]. A blank stored value is reported as absent.
type TokenSlot struct {
	storage LocalStorage
}

// NewTokenSlot binds a token slot to storage.
func NewTokenSlot(storage LocalStorage) *TokenSlot {
	return &TokenSlot{storage: storage}
}

// Token implements [TokenStore].
func (s *TokenSlot) Token(ctx context.Context) (string, error) {
	token, err := s.storage.GetItem(ctx, TokenKey)
	if errors.Is(err, ErrItemNotFound) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read access token: %w", err)
	}

	if strings.TrimSpace(token) == "" {
		return "", ErrTokenNotFound
	}

	return token, nil
}

// SetToken implements [TokenStore]. The token is stored exactly as given; a
// blank token is rejected.
func (s *TokenSlot) SetToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	if err := s.storage.SetItem(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("write access token: %w", err)
	}

	return nil
}

// Clear implements [TokenStore].
func (s *TokenSlot) Clear(ctx context.Context) error {
	if err := s.storage.RemoveItem(ctx, TokenKey); err != nil {
		return fmt.Errorf("remove access token: %w", err)
	}

	return nil
}
