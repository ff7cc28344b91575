package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/axle-client/internal/app"
	"github.com/MKhiriev/axle-client/internal/mock"
	"github.com/MKhiriev/axle-client/internal/rpc"
	"github.com/MKhiriev/axle-client/internal/store"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/models"
)

type testEnv struct {
	projects *mock.MockProjectServiceClient
	users    *mock.MockUserServiceClient
	stream   *mock.MockStreamingServiceClient
	deps     Deps
	pages    *pageState
	feed     *eventFeed
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		projects: mock.NewMockProjectServiceClient(ctrl),
		users:    mock.NewMockUserServiceClient(ctrl),
		stream:   mock.NewMockStreamingServiceClient(ctrl),
		pages:    newPageState(),
	}
	env.deps = Deps{
		Projects:      store.NewProjectsStore(env.projects),
		Users:         store.NewUsersStore(env.users),
		ProjectClient: env.projects,
		UserClient:    env.users,
		Streaming:     env.stream,
		PageSize:      2,
	}
	env.feed = &eventFeed{ctx: context.Background(), open: func() (*rpc.Subscription[models.Event], error) {
		return nil, nil
	}}
	return env
}

func (e *testEnv) model() model {
	return newModel(context.Background(), e.deps, e.pages, e.feed)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// update feeds msg to m and runs the returned command once, feeding its
// result back.
func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(model)
	if cmd == nil {
		return m
	}
	out := cmd()
	if _, ok := out.(tea.BatchMsg); ok {
		return m
	}
	next, _ = m.Update(out)
	return next.(model)
}

// send feeds msg to m without running the returned command.
func send(m model, msg tea.Msg) model {
	next, _ := m.Update(msg)
	return next.(model)
}

func withProjects(m model, items ...models.ProjectView) model {
	next, _ := m.Update(projectsStateMsg(store.State[models.ProjectView]{Items: items}))
	return next.(model)
}

func TestModel_RefreshRendersProjects(t *testing.T) {
	env := newTestEnv(t)
	env.projects.EXPECT().
		ListProjects(gomock.Any(), &models.ListProjectsRequest{Page: 1, PageSize: 2}).
		Return(&models.ListProjectsResponse{Projects: []*models.Project{
			{ID: "p1", Name: "Alpha", Status: models.ProjectStatusActive},
			{ID: "p2", Name: "Beta", Status: models.ProjectStatusArchived},
		}}, nil)

	m := env.model()
	m = update(t, m, runes("r"))

	require.Len(t, m.projects.items, 2)
	view := m.View()
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "active")
	assert.Contains(t, view, "archived")
}

func TestModel_RefreshErrorIsShown(t *testing.T) {
	env := newTestEnv(t)
	env.projects.EXPECT().ListProjects(gomock.Any(), gomock.Any()).
		Return(nil, &transport.CallError{Kind: transport.KindTransport, Code: transport.CodeUnavailable, Message: "connection refused"})

	m := update(t, env.model(), runes("r"))

	assert.Equal(t, "connection refused", m.projects.err)
	assert.Contains(t, m.View(), "error: connection refused")
	assert.Nil(t, m.errOverlay)
}

func TestModel_CursorMovement(t *testing.T) {
	env := newTestEnv(t)
	m := withProjects(env.model(), models.ProjectView{ID: "a"}, models.ProjectView{ID: "b"}, models.ProjectView{ID: "c"})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, runes("j"))
	m = update(t, m, runes("j"))
	assert.Equal(t, 2, m.projects.idx)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "b", m.selectedID())

	// Shrinking the list clamps the cursor.
	m = withProjects(m, models.ProjectView{ID: "a"})
	assert.Equal(t, 0, m.projects.idx)
}

func TestModel_TabLoadsUsers(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().
		ListUsers(gomock.Any(), &models.ListUsersRequest{Page: 1, PageSize: 2}).
		Return(&models.ListUsersResponse{Users: []*models.User{{ID: "u1", Name: "Ada", Email: "ada@axle.local", Role: models.UserRoleAdmin}}}, nil)

	m := update(t, env.model(), tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, screenUsers, m.screen)
	s, page := env.pages.get()
	assert.Equal(t, screenUsers, s)
	assert.Equal(t, int32(1), page)
	view := m.View()
	assert.Contains(t, view, "ada@axle.local")
	assert.Contains(t, view, "admin")
}

func TestModel_Paging(t *testing.T) {
	env := newTestEnv(t)
	env.projects.EXPECT().
		ListProjects(gomock.Any(), &models.ListProjectsRequest{Page: 2, PageSize: 2}).
		Return(&models.ListProjectsResponse{}, nil)
	env.projects.EXPECT().
		ListProjects(gomock.Any(), &models.ListProjectsRequest{Page: 1, PageSize: 2}).
		Return(&models.ListProjectsResponse{}, nil)

	m := withProjects(env.model(), models.ProjectView{ID: "a"}, models.ProjectView{ID: "b"})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, int32(2), m.projects.page)
	_, page := env.pages.get()
	assert.Equal(t, int32(2), page)

	// An empty page is the last one.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, int32(2), m.projects.page)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, int32(1), m.projects.page)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, int32(1), m.projects.page)
}

func TestModel_CreateProject(t *testing.T) {
	env := newTestEnv(t)
	env.projects.EXPECT().
		CreateProject(gomock.Any(), &models.CreateProjectRequest{Name: "Gamma", Description: "third"}).
		Return(&models.CreateProjectResponse{Project: &models.Project{ID: "p3", Name: "Gamma"}}, nil)

	m := update(t, env.model(), runes("n"))
	require.Equal(t, screenNewProject, m.screen)

	m = send(m, runes("Gamma"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, fieldDescription, m.form.focus)
	m = send(m, runes("third"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenProjects, m.screen)
	assert.Equal(t, "project created", m.status)
}

func TestModel_CreateProjectRequiresName(t *testing.T) {
	env := newTestEnv(t)

	m := update(t, env.model(), runes("n"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenNewProject, m.screen)
	assert.Equal(t, "name is required", m.form.err)
	assert.Contains(t, m.View(), "name is required")

	// q is text in the form, not quit.
	m = send(m, runes("q"))
	assert.Equal(t, screenNewProject, m.screen)
	assert.Equal(t, "q", m.form.inputs[fieldDescription].Value())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenProjects, m.screen)
}

func TestModel_ToggleArchived(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   models.ProjectStatus
		action string
	}{
		{name: "archive active", status: "1", want: models.ProjectStatusArchived, action: "project archived"},
		{name: "activate archived", status: "2", want: models.ProjectStatusActive, action: "project activated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.projects.EXPECT().
				UpdateProject(gomock.Any(), &models.UpdateProjectRequest{ID: "p1", Status: tt.want}).
				Return(&models.UpdateProjectResponse{}, nil)

			m := withProjects(env.model(), models.ProjectView{ID: "p1", Name: "Alpha", Status: tt.status})
			m = update(t, m, runes("a"))

			assert.Equal(t, tt.action, m.status)
		})
	}
}

func TestModel_DeleteAsksForConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.projects.EXPECT().
		DeleteProject(gomock.Any(), &models.DeleteProjectRequest{ID: "p1"}).
		Return(&models.DeleteProjectResponse{}, nil).
		Times(1)

	m := withProjects(env.model(), models.ProjectView{ID: "p1", Name: "Alpha", Status: "1"})

	m = update(t, m, runes("d"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), `Delete "Alpha"?`)

	m = update(t, m, runes("n"))
	assert.Nil(t, m.confirm)

	m = update(t, m, runes("d"))
	m = update(t, m, runes("y"))
	assert.Nil(t, m.confirm)
	assert.Equal(t, "project deleted", m.status)
}

func TestModel_MutationErrorOpensOverlay(t *testing.T) {
	env := newTestEnv(t)
	env.projects.EXPECT().
		DeleteProject(gomock.Any(), gomock.Any()).
		Return(nil, &transport.CallError{Kind: transport.KindProtocol, Code: transport.CodeNotFound, Message: "project not found"})

	m := withProjects(env.model(), models.ProjectView{ID: "p1", Name: "Alpha"})
	m = update(t, m, runes("d"))
	m = update(t, m, runes("y"))

	require.NotNil(t, m.errOverlay)
	assert.Equal(t, app.MsgNotFound, m.errOverlay.message)
	assert.Contains(t, m.View(), app.MsgNotFound)

	// Keys other than enter and esc are swallowed by the overlay.
	m = update(t, m, runes("d"))
	assert.Nil(t, m.confirm)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.errOverlay)
}

func TestModel_EventsFeed(t *testing.T) {
	env := newTestEnv(t)
	env.projects.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(&models.ListProjectsResponse{}, nil)

	m := env.model()
	for i := range feedCapacity + 2 {
		next, _ := m.Update(eventMsg{event: models.Event{ID: fmt.Sprint(i), Type: "user.updated"}})
		m = next.(model)
	}
	require.Len(t, m.events, feedCapacity)
	assert.Equal(t, fmt.Sprint(feedCapacity+1), m.events[0].ID)

	next, cmd := m.Update(eventMsg{event: models.Event{ID: "x", Type: "project.created", ProjectID: "p9"}})
	require.NotNil(t, cmd)
	assert.IsType(t, refreshDoneMsg{}, cmd())
	assert.Contains(t, next.(model).View(), "project.created p9")
}

func TestModel_FeedLifecycle(t *testing.T) {
	env := newTestEnv(t)
	opens := 0
	env.feed.open = func() (*rpc.Subscription[models.Event], error) {
		opens++
		if opens == 1 {
			return nil, &transport.CallError{Kind: transport.KindTransport, Code: transport.CodeUnavailable}
		}
		return nil, nil
	}

	m := env.model()
	m = update(t, m, m.cmdStartFeed()())
	assert.Equal(t, feedFailed, m.feedState)
	assert.Contains(t, m.View(), app.MsgServerUnavailable)
	assert.Contains(t, m.View(), "s: reconnect")

	m = update(t, m, runes("s"))
	assert.Equal(t, feedLive, m.feedState)
	assert.Equal(t, 2, opens)

	m = update(t, m, feedStatusMsg{ended: true})
	assert.Equal(t, feedEnded, m.feedState)
	assert.Contains(t, m.View(), "stream ended")

	// Reconnect is ignored while the stream is live.
	m = update(t, m, feedStatusMsg{started: true})
	_, cmd := m.Update(runes("s"))
	assert.Nil(t, cmd)
}

func TestModel_CopyID(t *testing.T) {
	env := newTestEnv(t)
	m := withProjects(env.model(), models.ProjectView{ID: "p1"})
	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m = update(t, m, runes("c"))
	assert.Equal(t, "p1", copied)
	assert.Equal(t, "id copied to clipboard", m.status)

	m = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	m = update(t, m, runes("c"))
	require.NotNil(t, m.errOverlay)
	assert.Contains(t, m.errOverlay.message, "no clipboard")
}

func TestModel_MeAndInfo(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().GetMe(gomock.Any(), &models.GetMeRequest{}).
		Return(&models.GetMeResponse{User: &models.User{ID: "u1", Name: "Demo"}}, nil)
	env.deps.BuildInfo = models.NewAppBuildInfo("v1.2.3", "", "")
	env.deps.Endpoints = []string{"bff: http://127.0.0.1:8080"}

	m := env.model()
	m = update(t, m, m.cmdLoadMe()())
	assert.Contains(t, m.View(), "signed in as Demo")

	m = update(t, m, runes("i"))
	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "bff: http://127.0.0.1:8080")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenProjects, m.screen)
}

func TestModel_Quit(t *testing.T) {
	env := newTestEnv(t)
	_, cmd := env.model().Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
