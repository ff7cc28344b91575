package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/axle-client/internal/store"
	"github.com/MKhiriev/axle-client/models"
)

type screen int

const (
	screenProjects screen = iota
	screenUsers
	screenNewProject
	screenInfo
)

// feedCapacity is how many recent events the feed pane keeps.
const feedCapacity = 10

type feedState int

const (
	feedConnecting feedState = iota
	feedLive
	feedEnded
	feedFailed
)

type model struct {
	ctx   context.Context
	deps  Deps
	pages *pageState
	feed  *eventFeed

	screen   screen
	projects listView[models.ProjectView]
	users    listView[models.UserView]
	form     projectForm
	me       models.UserView

	events    []models.Event
	feedState feedState
	feedErr   string

	confirm    *confirmModel
	errOverlay *errorOverlayModel
	status     string

	spinner spinner.Model
	width   int
	height  int

	copyToClipboard func(string) error
}

func newModel(ctx context.Context, deps Deps, pages *pageState, feed *eventFeed) model {
	return model{
		ctx:             ctx,
		deps:            deps,
		pages:           pages,
		feed:            feed,
		screen:          screenProjects,
		projects:        newListView[models.ProjectView](),
		users:           newListView[models.UserView](),
		spinner:         spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.cmdRefresh(screenProjects, m.projects.page),
		m.cmdLoadMe(),
		m.cmdStartFeed(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case projectsStateMsg:
		m.projects.apply(store.State[models.ProjectView](msg))
		return m, nil

	case usersStateMsg:
		m.users.apply(store.State[models.UserView](msg))
		return m, nil

	case refreshDoneMsg:
		// The store already holds the outcome; re-read it in case no change
		// listener is attached.
		if msg.screen == screenUsers {
			m.users.apply(m.deps.Users.Snapshot())
		} else {
			m.projects.apply(m.deps.Projects.Snapshot())
		}
		return m, nil

	case meLoadedMsg:
		if msg.err == nil {
			m.me = msg.user
		}
		return m, nil

	case eventMsg:
		m.events = append([]models.Event{msg.event}, m.events...)
		if len(m.events) > feedCapacity {
			m.events = m.events[:feedCapacity]
		}
		if strings.HasPrefix(msg.event.Type, "project.") {
			return m, m.cmdRefresh(screenProjects, m.projects.page)
		}
		return m, nil

	case feedStatusMsg:
		switch {
		case msg.started:
			m.feedState, m.feedErr = feedLive, ""
		case msg.ended:
			m.feedState, m.feedErr = feedEnded, ""
		case msg.err != nil:
			m.feedState, m.feedErr = feedFailed, humanizeError(msg.err)
		}
		return m, nil

	case projectSavedMsg:
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		if m.screen == screenNewProject {
			m.screen = screenProjects
		}
		m.status = "project " + msg.action
		return m, tea.Batch(m.cmdRefresh(screenProjects, m.projects.page), cmdClearStatus())

	case copiedMsg:
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: "copy failed: " + msg.err.Error()}
			return m, nil
		}
		m.status = "id copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen == screenNewProject {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.abort) {
		return m, tea.Quit
	}

	if m.errOverlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.confirm.id
			m.confirm = nil
			return m, m.cmdDeleteProject(id)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenNewProject:
		return m.handleFormKey(msg)
	case screenInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.screen = screenProjects
		}
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	return m.handleListKey(msg)
}

func (m model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.tab, keys.backtab):
		if m.screen == screenProjects {
			m.screen = screenUsers
		} else {
			m.screen = screenProjects
		}
		return m, m.showPage(m.currentPage())

	case key.Matches(msg, keys.up):
		if m.screen == screenUsers {
			m.users.up()
		} else {
			m.projects.up()
		}

	case key.Matches(msg, keys.down):
		if m.screen == screenUsers {
			m.users.down()
		} else {
			m.projects.down()
		}

	case key.Matches(msg, keys.left):
		moved := m.projects.prev
		if m.screen == screenUsers {
			moved = m.users.prev
		}
		if moved() {
			return m, m.showPage(m.currentPage())
		}

	case key.Matches(msg, keys.right):
		moved := m.projects.next
		if m.screen == screenUsers {
			moved = m.users.next
		}
		if moved(m.deps.PageSize) {
			return m, m.showPage(m.currentPage())
		}

	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh(m.screen, m.currentPage())

	case key.Matches(msg, keys.stream):
		if m.feedState == feedEnded || m.feedState == feedFailed {
			m.feedState = feedConnecting
			return m, m.cmdStartFeed()
		}

	case key.Matches(msg, keys.info):
		m.screen = screenInfo

	case key.Matches(msg, keys.copy):
		if id := m.selectedID(); id != "" {
			return m, m.cmdCopy(id)
		}

	case m.screen == screenProjects && key.Matches(msg, keys.newItem):
		m.form = newProjectForm()
		m.screen = screenNewProject

	case m.screen == screenProjects && key.Matches(msg, keys.toggle):
		if p, ok := m.projects.selected(); ok {
			return m, m.cmdToggleArchived(p)
		}

	case m.screen == screenProjects && key.Matches(msg, keys.delete):
		if p, ok := m.projects.selected(); ok {
			m.confirm = &confirmModel{id: p.ID, message: p.Name}
		}
	}
	return m, nil
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenProjects
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.focus < len(m.form.inputs)-1 {
			m.form.focusNext()
			return m, nil
		}
		name, description := m.form.values()
		if name == "" {
			m.form.err = "name is required"
			return m, nil
		}
		m.form.err = ""
		return m, m.cmdCreateProject(name, description)
	}
	return m, m.form.update(msg)
}

// showPage publishes the visible page to the refresh worker and loads it.
func (m model) showPage(page int32) tea.Cmd {
	m.pages.set(m.screen, page)
	return m.cmdRefresh(m.screen, page)
}

func (m model) currentPage() int32 {
	if m.screen == screenUsers {
		return m.users.page
	}
	return m.projects.page
}

func (m model) selectedID() string {
	if m.screen == screenUsers {
		u, _ := m.users.selected()
		return u.ID
	}
	p, _ := m.projects.selected()
	return p.ID
}
