// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the transient login form input. It is read from the UI at
// submission time and is never persisted.
type Credentials struct {
	// Identifier is the account e-mail, sent as the "username" form field.
	Identifier string

	// Secret is the plaintext password, sent as the "password" form field.
	Secret string
}
