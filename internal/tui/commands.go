package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/axle-client/internal/store"
	"github.com/MKhiriev/axle-client/models"
)

const statusTTL = 2 * time.Second

func (m model) cmdRefresh(s screen, page int32) tea.Cmd {
	return func() tea.Msg {
		var err error
		if s == screenUsers {
			err = m.deps.Users.Refresh(m.ctx, page, m.deps.PageSize)
		} else {
			err = m.deps.Projects.Refresh(m.ctx, page, m.deps.PageSize)
		}
		return refreshDoneMsg{screen: s, err: err}
	}
}

func (m model) cmdLoadMe() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.deps.UserClient.GetMe(m.ctx, &models.GetMeRequest{})
		if err != nil {
			return meLoadedMsg{err: err}
		}
		return meLoadedMsg{user: store.UserFromWire(resp.User)}
	}
}

func (m model) cmdStartFeed() tea.Cmd {
	return func() tea.Msg {
		if err := m.feed.start(); err != nil {
			return feedStatusMsg{err: err}
		}
		return feedStatusMsg{started: true}
	}
}

func (m model) cmdCreateProject(name, description string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.deps.ProjectClient.CreateProject(m.ctx, &models.CreateProjectRequest{
			Name:        name,
			Description: description,
		})
		return projectSavedMsg{action: "created", err: err}
	}
}

// cmdToggleArchived flips a project between active and archived.
func (m model) cmdToggleArchived(p models.ProjectView) tea.Cmd {
	status, action := models.ProjectStatusArchived, "archived"
	if p.Status == "2" {
		status, action = models.ProjectStatusActive, "activated"
	}
	return func() tea.Msg {
		_, err := m.deps.ProjectClient.UpdateProject(m.ctx, &models.UpdateProjectRequest{ID: p.ID, Status: status})
		return projectSavedMsg{action: action, err: err}
	}
}

func (m model) cmdDeleteProject(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.deps.ProjectClient.DeleteProject(m.ctx, &models.DeleteProjectRequest{ID: id})
		return projectSavedMsg{action: "deleted", err: err}
	}
}

func (m model) cmdCopy(v string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.copyToClipboard(v)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
