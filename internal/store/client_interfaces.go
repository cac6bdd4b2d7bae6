// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is a persistent string key-value store on the client device.
// It plays the role a browser's localStorage plays for a web page: values
// survive process restarts and every key holds at most one value.
type LocalStorage interface {
	// GetItem returns the value stored under key, or [ErrItemNotFound] if
	// the key is absent.
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// TokenStore is the session-state object owning the access token slot. It is
// the only mutation surface for the token.
type TokenStore interface {
	// Token returns the stored access token, or [ErrTokenNotFound] if the
	// slot is empty.
	Token(ctx context.Context) (string, error)

	// SetToken replaces the stored token.
	SetToken(ctx context.Context, token string) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
