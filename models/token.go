// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessToken is the JSON body returned by the login endpoint on success.
type AccessToken struct {
	// AccessToken is the opaque bearer credential.
	AccessToken string `json:"access_token"`

	// TokenType is the token scheme reported by the server (usually "bearer").
	// The client always sends the token with the Bearer scheme regardless.
	TokenType string `json:"token_type"`
}
