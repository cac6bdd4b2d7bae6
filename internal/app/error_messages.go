// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// erp-session client.
//
// Msg* constants are the human-readable strings shown in the login form's
// error display. Server* constants are the detail strings the ERP backend is
// known to send; the client shows them verbatim.
package app

const (
	// MsgLoginFailed is shown when the login endpoint rejects the request
	// without a usable detail string.
	MsgLoginFailed = "Login failed"

	// MsgNetworkError is shown when the login request never produced a usable
	// response: a transport failure or an undecodable success body.
	MsgNetworkError = "Network error occurred"

	// MsgSessionNotSaved is shown when the token was issued but could not be
	// written to local storage.
	MsgSessionNotSaved = "Could not save session"
)

const (
	// ServerIncorrectCredentials is the 400 detail for a wrong email or
	// password.
	ServerIncorrectCredentials = "Incorrect email or password"

	// ServerInactiveUser is the 400 detail for a disabled account.
	ServerInactiveUser = "Inactive user"

	// ServerCouldNotValidateCredentials is the 401 detail for an invalid or
	// expired token.
	ServerCouldNotValidateCredentials = "Could not validate credentials"
)
