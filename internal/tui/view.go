package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/axle-client/models"
)

const (
	colID     = 12
	colName   = 24
	colDetail = 32
)

func (m model) View() string {
	var body string
	switch m.screen {
	case screenNewProject:
		body = m.form.View()
	case screenInfo:
		body = renderBuildInfoWindow(m.deps.BuildInfo, m.deps.Endpoints)
	default:
		body = m.listPage()
	}

	switch {
	case m.errOverlay != nil:
		body = m.place(m.errOverlay.View())
	case m.confirm != nil:
		body = m.place(m.confirm.View())
	}
	return appStyle.Render(body)
}

func (m model) place(overlay string) string {
	if m.width == 0 || m.height == 0 {
		return overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

func (m model) listPage() string {
	var b strings.Builder
	if m.screen == screenUsers {
		b.WriteString(m.usersTable())
	} else {
		b.WriteString(m.projectsTable())
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.feedPane())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	hotKeys := "↑/↓: move  ←/→: page  r: refresh  tab: switch  c: copy id  i: about  q: quit"
	if m.screen == screenProjects {
		hotKeys = "n: new  a: archive/activate  d: delete  " + hotKeys
	}
	if m.feedState == feedEnded || m.feedState == feedFailed {
		hotKeys += "  s: reconnect"
	}
	return renderPage(m.header(), b.String(), hotKeys)
}

func (m model) header() string {
	projects, users := tabStyle.Render("projects"), tabStyle.Render("users")
	if m.screen == screenUsers {
		users = tabActiveStyle.Render("users")
	} else {
		projects = tabActiveStyle.Render("projects")
	}
	h := titleStyle.Render("AXLE") + "  " + projects + " | " + users
	if m.me.Name != "" {
		h += "  " + helpStyle.Render("signed in as "+m.me.Name)
	}
	return h
}

func (m model) listStatus(page int32, loading bool, errText string) string {
	line := fmt.Sprintf("page %d", page)
	if loading {
		line += " " + m.spinner.View() + " loading"
	}
	if errText != "" {
		line += "  " + errorStyle.Render("error: "+errText)
	}
	return line
}

func (m model) projectsTable() string {
	var b strings.Builder
	b.WriteString(m.listStatus(m.projects.page, m.projects.loading, m.projects.err))
	b.WriteString("\n\n")
	if len(m.projects.items) == 0 {
		b.WriteString("no projects")
		return b.String()
	}
	for i, p := range m.projects.items {
		row := fmt.Sprintf("%-*s %-*s %-9s %s",
			colID, fitText(p.ID, colID),
			colName, fitText(p.Name, colName),
			statusLabel(p.Status),
			fitText(valueOrDash(p.Description), colDetail))
		b.WriteString(m.row(i == m.projects.idx, row))
	}
	return b.String()
}

func (m model) usersTable() string {
	var b strings.Builder
	b.WriteString(m.listStatus(m.users.page, m.users.loading, m.users.err))
	b.WriteString("\n\n")
	if len(m.users.items) == 0 {
		b.WriteString("no users")
		return b.String()
	}
	for i, u := range m.users.items {
		row := fmt.Sprintf("%-*s %-*s %-*s %s",
			colID, fitText(u.ID, colID),
			colName, fitText(u.Name, colName),
			colDetail, fitText(u.Email, colDetail),
			roleLabel(u.Role))
		b.WriteString(m.row(i == m.users.idx, row))
	}
	return b.String()
}

func (m model) row(selected bool, text string) string {
	if selected {
		return selectedStyle.Render("> "+text) + "\n"
	}
	return "  " + text + "\n"
}

func (m model) feedPane() string {
	var b strings.Builder
	b.WriteString("events: ")
	switch m.feedState {
	case feedConnecting:
		b.WriteString("connecting")
	case feedLive:
		b.WriteString("live")
	case feedEnded:
		b.WriteString("stream ended")
	case feedFailed:
		b.WriteString(errorStyle.Render("stream failed: " + m.feedErr))
	}
	for _, e := range m.events {
		b.WriteString("\n")
		b.WriteString(eventLine(e))
	}
	return b.String()
}

func eventLine(e models.Event) string {
	line := e.Type
	if !e.OccurredAt.IsZero() {
		line = e.OccurredAt.Local().Format("15:04:05") + " " + line
	}
	if e.ProjectID != "" {
		line += " " + e.ProjectID
	}
	return line
}
