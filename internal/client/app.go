package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/saeedstore/erp-session/internal/logger"
	"github.com/saeedstore/erp-session/internal/store"
	"github.com/saeedstore/erp-session/internal/tui"
)

type App struct {
	ui       Runner
	storages *store.ClientStorages
	logger   *logger.Logger
}

func NewApp(ui Runner, storages *store.ClientStorages, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client app: ui is required")
	}
	if storages == nil {
		return nil, errors.New("client app: storages are required")
	}

	return &App{ui: ui, storages: storages, logger: logger}, nil
}

// Run implements [Client]. It blocks until the UI exits or the process
// receives SIGINT/SIGTERM, then closes the local storage.
func (a *App) Run() (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to close local storage")
			if err == nil {
				err = fmt.Errorf("close storage: %w", closeErr)
			}
		}
	}()

	a.logger.Info().Msg("client started")
	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("client stopped")
		return nil
	}
	return err
}
