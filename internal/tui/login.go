// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saeedstore/erp-session/internal/service"
	"github.com/saeedstore/erp-session/models"
)

// Input identifiers of the login form.
const (
	inputEmail    = "email"
	inputPassword = "password"
)

// LoginModel is the Bubble Tea model for the login page. It renders the email
// and password inputs and an error display, and dispatches an async login
// command on submission. Redirect outcomes are turned into [NavigateTo].
type LoginModel struct {
	ctx     context.Context
	session service.SessionClient

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with email and password inputs. The
// email field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, session service.SessionClient) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = inputEmail
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = inputPassword
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model]. Clears the password and any stale error each
// time the page is opened, then starts the cursor blink.
func (m *LoginModel) Init() tea.Cmd {
	m.inputs[1].SetValue("")
	m.errMsg = ""
	m.submitting = false
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginDoneMsg: clears the submitting state; a redirect navigates, an
//     error outcome fills the error display.
//   - tab / shift+tab: move focus between inputs.
//   - enter: dispatches the async login command unless one is in flight.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		switch done.outcome.Kind {
		case models.OutcomeRedirect:
			m.inputs[1].SetValue("")
			m.errMsg = ""
			return m, navigate(done.outcome.Target)
		case models.OutcomeError:
			m.errMsg = done.outcome.Message
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(m.inputs[0].Value(), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return loginDoneMsg{outcome: session.Login(ctx, email, password)}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
