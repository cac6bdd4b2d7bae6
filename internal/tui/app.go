package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saeedstore/erp-session/models"
)

// RootModel is a TUI router:
// 1) keeps the active page, keyed by path
// 2) handles global quit and the build info window
// 3) handles NavigateTo messages
// 4) shows error overlays raised by pages
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentPath string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	overlay       *errorOverlayModel

	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentPath: startPage,
		buildInfo:   buildInfo,
	}
}

// CurrentPath returns the path of the active page.
func (r RootModel) CurrentPath() string {
	return r.currentPath
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		}

		if r.overlay != nil {
			if key.Matches(keyMsg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}
		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}
	}

	switch m := msg.(type) {
	case showErrorMsg:
		r.overlay = &errorOverlayModel{message: m.message}
		return r, nil
	case NavigateTo:
		next, exists := r.pages[m.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.currentPath = m.Page
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.overlay != nil:
		return appStyle.Render(r.overlay.View())
	case r.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	case r.current == nil:
		return appStyle.Render(renderPage("ERP SESSION", "", ""))
	}
	return appStyle.Render(r.current.View())
}
