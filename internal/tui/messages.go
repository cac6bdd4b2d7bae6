package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saeedstore/erp-session/models"
)

// NavigateTo asks the root model to switch to the page registered under Page.
type NavigateTo struct {
	Page string
}

type loginDoneMsg struct {
	outcome models.Outcome
}

type requestDoneMsg struct {
	outcome models.Outcome
	err     error
}

type logoutDoneMsg struct {
	outcome models.Outcome
	err     error
}

type subjectLoadedMsg struct {
	subject string
}

type showErrorMsg struct {
	message string
}

type copiedMsg struct {
	err error
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func showError(message string) tea.Cmd {
	return func() tea.Msg { return showErrorMsg{message: message} }
}
