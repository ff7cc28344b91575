package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/rpc"
	"github.com/MKhiriev/axle-client/internal/rpc/bff"
	"github.com/MKhiriev/axle-client/internal/rpc/gateway"
	"github.com/MKhiriev/axle-client/internal/store"
	"github.com/MKhiriev/axle-client/models"
)

// DefaultPageSize is used when Deps.PageSize is not positive.
const DefaultPageSize = 20

// Deps are the data sources the terminal UI reads and writes.
type Deps struct {
	Projects      *store.ProjectsStore
	Users         *store.UsersStore
	ProjectClient bff.ProjectServiceClient
	UserClient    bff.UserServiceClient
	Streaming     gateway.StreamingServiceClient
	PageSize      int32
	BuildInfo     models.AppBuildInfo
	// Endpoints are "name: url" lines shown on the about screen.
	Endpoints []string
}

type TUI struct {
	deps  Deps
	pages *pageState

	logger *logger.Logger
}

func New(deps Deps, log *logger.Logger) (*TUI, error) {
	if deps.Projects == nil || deps.Users == nil || deps.ProjectClient == nil || deps.UserClient == nil || deps.Streaming == nil {
		return nil, ErrMissingDependency
	}
	if deps.PageSize <= 0 {
		deps.PageSize = DefaultPageSize
	}
	return &TUI{deps: deps, pages: newPageState(), logger: log}, nil
}

// RefreshCurrent reloads the page shown by the active list screen. It is
// safe to call from any goroutine and is what the auto-refresh worker runs.
func (t *TUI) RefreshCurrent(ctx context.Context) error {
	s, page := t.pages.get()
	if s == screenUsers {
		return t.deps.Users.Refresh(ctx, page, t.deps.PageSize)
	}
	return t.deps.Projects.Refresh(ctx, page, t.deps.PageSize)
}

// Run shows the UI until the user quits or ctx ends.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	feed := &eventFeed{ctx: ctx}
	m := newModel(ctx, t.deps, t.pages, feed)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	feed.open = func() (*rpc.Subscription[models.Event], error) {
		return t.deps.Streaming.Subscribe(ctx, &models.SubscribeRequest{}, rpc.Handlers[models.Event]{
			OnEvent: func(e *models.Event) { p.Send(eventMsg{event: *e}) },
			OnError: func(err error) { p.Send(feedStatusMsg{err: err}) },
			OnEnd:   func() { p.Send(feedStatusMsg{ended: true}) },
		})
	}
	defer feed.stop()

	unsubProjects := t.deps.Projects.OnChange(func(s store.State[models.ProjectView]) {
		p.Send(projectsStateMsg(s))
	})
	defer unsubProjects()
	unsubUsers := t.deps.Users.OnChange(func(s store.State[models.UserView]) {
		p.Send(usersStateMsg(s))
	})
	defer unsubUsers()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Msg("terminal UI stopped")
	}
	return err
}

// eventFeed owns the gateway subscription so the UI can restart it after
// it ends.
type eventFeed struct {
	ctx  context.Context
	open func() (*rpc.Subscription[models.Event], error)

	mu  sync.Mutex
	sub *rpc.Subscription[models.Event]
}

func (f *eventFeed) start() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sub != nil {
		return f.sub.Restart(f.ctx)
	}
	sub, err := f.open()
	if err != nil {
		return err
	}
	f.sub = sub
	return nil
}

func (f *eventFeed) stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sub != nil {
		f.sub.Cancel()
	}
}

// pageState is the screen and page the user is looking at, shared with
// the refresh worker.
type pageState struct {
	mu     sync.Mutex
	screen screen
	page   map[screen]int32
}

func newPageState() *pageState {
	return &pageState{screen: screenProjects, page: map[screen]int32{screenProjects: 1, screenUsers: 1}}
}

func (p *pageState) get() (screen, int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.screen, p.page[p.screen]
}

func (p *pageState) set(s screen, page int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screen = s
	p.page[s] = page
}
