// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Runner is the part of the UI the application drives. *tui.TUI satisfies
// it.
type Runner interface {
	// Run blocks until the UI exits or ctx is cancelled.
	Run(ctx context.Context) error
}
