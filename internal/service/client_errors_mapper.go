// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/saeedstore/erp-session/internal/adapter"
	"github.com/saeedstore/erp-session/internal/app"
)

// loginErrorMessage translates a failed login exchange into the message shown
// to the user.
func loginErrorMessage(err error) string {
	// an undecodable body counts as a failed exchange whatever its status
	if errors.Is(err, adapter.ErrMalformedResponse) {
		return app.MsgNetworkError
	}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Detail != "" {
			return statusErr.Detail
		}
		return app.MsgLoginFailed
	}

	// transport failure or malformed success body
	return app.MsgNetworkError
}
