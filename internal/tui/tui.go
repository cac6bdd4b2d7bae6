package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saeedstore/erp-session/internal/config"
	"github.com/saeedstore/erp-session/internal/logger"
	"github.com/saeedstore/erp-session/internal/service"
	"github.com/saeedstore/erp-session/internal/store"
	"github.com/saeedstore/erp-session/models"
)

var ErrUserQuit = errors.New("user quit the program")

// TUI runs the terminal front end over a [service.SessionClient].
type TUI struct {
	session   service.SessionClient
	tokens    store.TokenStore
	probePath string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, tokens store.TokenStore, appCfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionClient == nil {
		return nil, errors.New("tui: session client is required")
	}

	return &TUI{
		session:   services.SessionClient,
		tokens:    tokens,
		probePath: appCfg.ProbePath,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// NewRoot builds the page router. The start page is home when a token is
// already stored and the login page otherwise.
func (t *TUI) NewRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		models.PathLogin: NewLoginModel(ctx, t.session),
		models.PathHome:  NewHomeModel(ctx, t.session, t.tokens, t.probePath, t.logger),
	}

	start := models.PathLogin
	if t.session.IsAuthenticated(ctx) {
		start = models.PathHome
	}

	return NewRootModel(pages, start, t.buildInfo)
}

// Run blocks until the user quits. It returns [ErrUserQuit] on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(t.NewRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
