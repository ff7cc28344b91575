package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/transport"
)

// UnknownError is shown when a failed refresh carries no message.
const UnknownError = "Unknown error"

// State is a point-in-time copy of a store's observables. Err is empty when
// the last completed refresh succeeded.
type State[T any] struct {
	Items   []T
	Loading bool
	Err     string
}

// ListQuery tells a ListStore how to call one list RPC.
type ListQuery[Req, Resp, Item any] struct {
	// Name labels log entries, e.g. "projects".
	Name string
	// Call performs the unary RPC.
	Call func(ctx context.Context, req *Req) (*Resp, error)
	// Request builds the request for a page.
	Request func(page, pageSize int32) *Req
	// Items projects the reply into view-model items, keeping server order.
	Items func(resp *Resp) []Item
}

type Option func(*options)

type options struct {
	logger *logger.Logger
}

func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// ListStore keeps the result of a paged list RPC as observable state.
//
// A store belongs to one owner (typically one screen). Overlapping
// refreshes from that owner are allowed: each refresh takes an issuance
// token and its result is dropped if a newer refresh has been issued.
type ListStore[Req, Resp, Item any] struct {
	items   *Observable[[]Item]
	loading *Observable[bool]
	errMsg  *Observable[string]

	query  ListQuery[Req, Resp, Item]
	logger *logger.Logger

	mu     sync.Mutex
	latest uint64

	changes *Observable[State[Item]]
}

func NewListStore[Req, Resp, Item any](query ListQuery[Req, Resp, Item], opts ...Option) *ListStore[Req, Resp, Item] {
	o := options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &ListStore[Req, Resp, Item]{
		items:   NewObservable[[]Item](nil),
		loading: NewObservable(false),
		errMsg:  NewObservable(""),
		query:   query,
		logger:  o.logger,
		changes: NewObservable(State[Item]{}),
	}
}

// Items is the projected items of the last applied refresh.
func (s *ListStore[Req, Resp, Item]) Items() View[[]Item] { return s.items.ReadOnly() }

// Loading is true while the latest issued refresh is unresolved.
func (s *ListStore[Req, Resp, Item]) Loading() View[bool] { return s.loading.ReadOnly() }

// Err is the message of the last applied failure, or "".
func (s *ListStore[Req, Resp, Item]) Err() View[string] { return s.errMsg.ReadOnly() }

// Snapshot returns the current state of all three observables.
func (s *ListStore[Req, Resp, Item]) Snapshot() State[Item] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ListStore[Req, Resp, Item]) snapshotLocked() State[Item] {
	return State[Item]{Items: s.items.Get(), Loading: s.loading.Get(), Err: s.errMsg.Get()}
}

// OnChange calls fn with a consistent snapshot after a refresh starts and
// after an applied resolution.
func (s *ListStore[Req, Resp, Item]) OnChange(fn func(State[Item])) (unsubscribe func()) {
	return s.changes.Subscribe(fn)
}

// Refresh loads one page. Loading turns true immediately while the previous
// items and error stay visible. The outcome is applied only if no newer
// Refresh was issued before this one resolved.
//
// The call's error is returned whether or not it was applied.
func (s *ListStore[Req, Resp, Item]) Refresh(ctx context.Context, page, pageSize int32) error {
	s.mu.Lock()
	s.latest++
	token := s.latest
	notifyLoading := s.loading.store(true)
	notifyChange := s.changes.store(s.snapshotLocked())
	s.mu.Unlock()

	notifyLoading()
	notifyChange()

	start := time.Now()
	resp, err := s.query.Call(ctx, s.query.Request(page, pageSize))

	applied := s.resolve(token, resp, err)

	ev := s.logger.Debug()
	if err != nil {
		ev = s.logger.Warn().Err(err)
	}
	ev.Str("store", s.query.Name).
		Int32("page", page).
		Int32("page_size", pageSize).
		Uint64("token", token).
		Bool("applied", applied).
		Dur("duration", time.Since(start)).
		Msg("refresh resolved")

	return err
}

func (s *ListStore[Req, Resp, Item]) resolve(token uint64, resp *Resp, callErr error) bool {
	s.mu.Lock()
	if token != s.latest {
		s.mu.Unlock()
		return false
	}

	notes := make([]func(), 0, 4)
	if callErr == nil {
		var items []Item
		if resp != nil {
			items = s.query.Items(resp)
		}
		if items == nil {
			items = []Item{}
		}
		notes = append(notes, s.items.store(items), s.errMsg.store(""))
	} else {
		notes = append(notes, s.errMsg.store(errorMessage(callErr)))
	}
	notes = append(notes, s.loading.store(false))
	notes = append(notes, s.changes.store(s.snapshotLocked()))
	s.mu.Unlock()

	for _, notify := range notes {
		notify()
	}
	return true
}

// errorMessage picks the text shown for a failed refresh.
func errorMessage(err error) string {
	var msg string
	var ce *transport.CallError
	if errors.As(err, &ce) {
		msg = ce.Message
	} else {
		msg = err.Error()
	}
	if msg == "" {
		return UnknownError
	}
	return msg
}
