package tui

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saeedstore/erp-session/internal/logger"
	"github.com/saeedstore/erp-session/internal/service"
	"github.com/saeedstore/erp-session/internal/store"
	"github.com/saeedstore/erp-session/internal/utils"
	"github.com/saeedstore/erp-session/models"
)

const maxBodyPreview = 512

var writeClipboard = clipboard.WriteAll

// HomeModel is the page shown to an authenticated user. It displays who the
// token was issued to, fetches the probe resource on demand and logs out.
type HomeModel struct {
	ctx       context.Context
	session   service.SessionClient
	tokens    store.TokenStore
	probePath string
	logger    *logger.Logger

	subject  string
	busy     bool
	status   string
	lastBody string
}

// NewHomeModel creates a [HomeModel]. tokens is only read, to show the token
// subject.
func NewHomeModel(ctx context.Context, session service.SessionClient, tokens store.TokenStore, probePath string, logger *logger.Logger) *HomeModel {
	return &HomeModel{
		ctx:       ctx,
		session:   session,
		tokens:    tokens,
		probePath: probePath,
		logger:    logger,
	}
}

// Init implements [tea.Model]. Resets the page and loads the token subject.
func (m *HomeModel) Init() tea.Cmd {
	m.busy = false
	m.status = ""
	m.lastBody = ""
	m.subject = ""
	return m.cmdLoadSubject()
}

// Update implements [tea.Model]. Keys: r fetches the probe resource, l logs
// out, y copies the last response body to the clipboard.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case subjectLoadedMsg:
		m.subject = msg.subject
		return m, nil

	case requestDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "request failed"
			return m, showError(humanizeServerUnavailableError(msg.err))
		}
		switch msg.outcome.Kind {
		case models.OutcomeRedirect:
			return m, navigate(msg.outcome.Target)
		case models.OutcomeResponse:
			m.status, m.lastBody = describeResponse(m.probePath, msg.outcome.Response)
		}
		return m, nil

	case logoutDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "HomeModel.Update").Msg("logout could not clear local session")
			return m, tea.Batch(navigate(msg.outcome.Target), showError("Session could not be cleared: "+msg.err.Error()))
		}
		return m, navigate(msg.outcome.Target)

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "response copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.refresh):
			m.busy = true
			m.status = "loading..."
			return m, m.cmdProbe()
		case key.Matches(msg, keys.logout):
			m.busy = true
			return m, m.cmdLogout()
		case key.Matches(msg, keys.copy):
			if m.lastBody == "" {
				return m, nil
			}
			return m, cmdCopy(m.lastBody)
		}
	}

	return m, nil
}

// View implements [tea.Model].
func (m *HomeModel) View() string {
	var b strings.Builder
	b.WriteString("Signed in as: ")
	b.WriteString(valueOrNA(m.subject))
	b.WriteString("\n")
	b.WriteString("Resource:     ")
	b.WriteString(m.probePath)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.lastBody != "" {
		b.WriteString("\n")
		b.WriteString(fitText(m.lastBody, maxBodyPreview))
		b.WriteString("\n")
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "r: fetch │ y: copy │ l: logout")
}

func (m *HomeModel) cmdLoadSubject() tea.Cmd {
	ctx := m.ctx
	tokens := m.tokens
	log := m.logger

	return func() tea.Msg {
		token, err := tokens.Token(ctx)
		if err != nil {
			return subjectLoadedMsg{}
		}

		subject, err := utils.TokenSubject(token)
		if err != nil {
			// opaque tokens are valid too
			log.Debug().Err(err).Str("func", "HomeModel.cmdLoadSubject").Msg("token has no readable subject")
			return subjectLoadedMsg{}
		}
		return subjectLoadedMsg{subject: subject}
	}
}

func (m *HomeModel) cmdProbe() tea.Cmd {
	ctx := utils.WithTraceID(m.ctx, utils.NewTraceID())
	session := m.session
	req := models.Request{URL: m.probePath, Method: http.MethodGet}

	return func() tea.Msg {
		outcome, err := session.AuthenticatedRequest(ctx, req)
		return requestDoneMsg{outcome: outcome, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		outcome, err := session.Logout(ctx)
		return logoutDoneMsg{outcome: outcome, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func describeResponse(path string, resp *models.Response) (status, body string) {
	if resp == nil {
		return "", ""
	}
	status = fmt.Sprintf("GET %s → %d %s", path, resp.StatusCode, http.StatusText(resp.StatusCode))
	return status, strings.TrimSpace(string(resp.Body))
}
