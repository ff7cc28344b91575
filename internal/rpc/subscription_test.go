// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

// recorder collects callbacks from the receive goroutine.
type recorder struct {
	mu     sync.Mutex
	events []string
	errs   []error
	ends   int
}

func (r *recorder) handlers() Handlers[testEvent] {
	return Handlers[testEvent]{
		OnEvent: func(ev *testEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, ev.ID)
		},
		OnError: func(err error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.errs = append(r.errs, err)
		},
		OnEnd: func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.ends++
		},
	}
}

func (r *recorder) snapshot() ([]string, int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...), len(r.errs), r.ends
}

func newWatch(t *testing.T, ft *fakeTransport) StreamFunc[testRequest, testEvent] {
	t.Helper()
	c, err := NewClient(testServiceDesc, ft)
	require.NoError(t, err)
	watch, err := NewServerStream[testRequest, testEvent](c, "WatchThings")
	require.NoError(t, err)
	return watch
}

func waitDone[E any](t *testing.T, sub *Subscription[E]) {
	t.Helper()
	select {
	case <-sub.Done():
	case <-time.After(waitTimeout):
		t.Fatal("subscription did not finish")
	}
}

// ── Delivery ────────────────────────────────────────────────────────────────

// TestSubscription_DeliversInOrderThenEnds covers Idle → Active → Ended.
func TestSubscription_DeliversInOrderThenEnds(t *testing.T) {
	stream := newChanStream(8)
	for _, id := range []string{"e1", "e2", "e3"} {
		stream.events <- &testEvent{ID: id}
	}
	ft := &fakeTransport{streams: []*chanStream{stream}}
	rec := &recorder{}

	sub, err := newWatch(t, ft)(context.Background(), &testRequest{}, rec.handlers())
	require.NoError(t, err)
	assert.Equal(t, StateActive, sub.State())

	stream.finish()
	waitDone(t, sub)

	events, errs, ends := rec.snapshot()
	assert.Equal(t, []string{"e1", "e2", "e3"}, events)
	assert.Zero(t, errs)
	assert.Equal(t, 1, ends)
	assert.Equal(t, StateEnded, sub.State())
	assert.Equal(t, uint64(3), sub.Seq())
	assert.NoError(t, sub.Err())
	assert.True(t, stream.isClosed())
	assert.Equal(t, []string{"/test.v1.ThingService/WatchThings"}, ft.procedures)
}

func TestSubscription_FailureIsTerminal(t *testing.T) {
	stream := newChanStream(1)
	stream.events <- &testEvent{ID: "e1"}
	stream.end <- &transport.CallError{Kind: transport.KindTransport, Code: transport.CodeUnavailable, Message: "reset"}
	rec := &recorder{}

	sub, err := newWatch(t, &fakeTransport{streams: []*chanStream{stream}})(context.Background(), nil, rec.handlers())
	require.NoError(t, err)
	waitDone(t, sub)

	events, errs, ends := rec.snapshot()
	assert.Equal(t, []string{"e1"}, events)
	assert.Equal(t, 1, errs)
	assert.Zero(t, ends)
	assert.Equal(t, StateFailed, sub.State())
	assert.Equal(t, transport.CodeUnavailable, transport.CodeOf(sub.Err()))
}

func TestSubscription_OpenFailure(t *testing.T) {
	ft := &fakeTransport{streamErr: &transport.CallError{Kind: transport.KindTransport, Code: transport.CodeUnavailable}}
	rec := &recorder{}

	sub, err := newWatch(t, ft)(context.Background(), nil, rec.handlers())

	assert.Nil(t, sub)
	assert.Equal(t, transport.CodeUnavailable, transport.CodeOf(err))
	events, errs, ends := rec.snapshot()
	assert.Empty(t, events)
	assert.Zero(t, errs)
	assert.Zero(t, ends)
}

// ── Cancel ──────────────────────────────────────────────────────────────────

// TestSubscription_NoCallbackAfterCancel leaves events in the buffer after
// Cancel and checks none of them is delivered.
func TestSubscription_NoCallbackAfterCancel(t *testing.T) {
	stream := newChanStream(8)
	ft := &fakeTransport{streams: []*chanStream{stream}}
	rec := &recorder{}
	delivered := make(chan struct{}, 1)
	h := rec.handlers()
	onEvent := h.OnEvent
	h.OnEvent = func(ev *testEvent) {
		onEvent(ev)
		delivered <- struct{}{}
	}

	sub, err := newWatch(t, ft)(context.Background(), nil, h)
	require.NoError(t, err)

	stream.events <- &testEvent{ID: "e1"}
	select {
	case <-delivered:
	case <-time.After(waitTimeout):
		t.Fatal("first event not delivered")
	}

	sub.Cancel()
	stream.events <- &testEvent{ID: "late-1"}
	stream.events <- &testEvent{ID: "late-2"}
	stream.finish()
	waitDone(t, sub)

	events, errs, ends := rec.snapshot()
	assert.Equal(t, []string{"e1"}, events)
	assert.Zero(t, errs)
	assert.Zero(t, ends)
	assert.Equal(t, StateCancelled, sub.State())
	assert.True(t, stream.isClosed())
}

// TestSubscription_CancelFromCallback cancels inside OnEvent with more
// events already buffered.
func TestSubscription_CancelFromCallback(t *testing.T) {
	stream := newChanStream(8)
	for _, id := range []string{"e1", "e2", "e3"} {
		stream.events <- &testEvent{ID: id}
	}
	ft := &fakeTransport{streams: []*chanStream{stream}}

	var (
		mu   sync.Mutex
		seen []string
		sub  *Subscription[testEvent]
	)
	ready := make(chan struct{})
	h := Handlers[testEvent]{
		OnEvent: func(ev *testEvent) {
			<-ready
			mu.Lock()
			seen = append(seen, ev.ID)
			mu.Unlock()
			sub.Cancel()
		},
		OnEnd: func() { t.Error("OnEnd after cancel") },
	}

	var err error
	sub, err = newWatch(t, ft)(context.Background(), nil, h)
	require.NoError(t, err)
	close(ready)
	waitDone(t, sub)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"e1"}, seen)
	assert.Equal(t, StateCancelled, sub.State())
}

// TestSubscription_CancelRacingDelivery cancels from another goroutine while
// events keep arriving. No handler may start once Cancel has returned.
func TestSubscription_CancelRacingDelivery(t *testing.T) {
	for round := range 50 {
		stream := newChanStream(1)
		ft := &fakeTransport{streams: []*chanStream{stream}}

		var (
			cancelled atomic.Bool
			late      atomic.Int32
			delivered atomic.Int32
		)
		h := Handlers[testEvent]{
			OnEvent: func(*testEvent) {
				if cancelled.Load() {
					late.Add(1)
				}
				delivered.Add(1)
				runtime.Gosched()
			},
		}

		sub, err := newWatch(t, ft)(context.Background(), nil, h)
		require.NoError(t, err)

		stop := make(chan struct{})
		fed := make(chan struct{})
		go func() {
			defer close(fed)
			for i := 0; ; i++ {
				select {
				case stream.events <- &testEvent{ID: strconv.Itoa(i)}:
				case <-stop:
					return
				}
			}
		}()

		require.Eventually(t, func() bool { return delivered.Load() >= 5 }, waitTimeout, time.Millisecond)
		sub.Cancel()
		cancelled.Store(true)

		waitDone(t, sub)
		close(stop)
		<-fed

		assert.Zero(t, late.Load(), "round %d", round)
		assert.Equal(t, StateCancelled, sub.State())
	}
}

// TestSubscription_CancelWaitsForRunningHandler blocks OnEvent and checks
// that Cancel from another goroutine returns only after it.
func TestSubscription_CancelWaitsForRunningHandler(t *testing.T) {
	stream := newChanStream(1)
	stream.events <- &testEvent{ID: "e1"}
	ft := &fakeTransport{streams: []*chanStream{stream}}

	entered := make(chan struct{})
	release := make(chan struct{})
	h := Handlers[testEvent]{
		OnEvent: func(*testEvent) {
			close(entered)
			<-release
		},
	}

	sub, err := newWatch(t, ft)(context.Background(), nil, h)
	require.NoError(t, err)
	<-entered

	returned := make(chan struct{})
	go func() {
		sub.Cancel()
		close(returned)
	}()

	select {
	case <-returned:
		t.Fatal("Cancel returned while OnEvent was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-returned:
	case <-time.After(waitTimeout):
		t.Fatal("Cancel did not return after OnEvent")
	}
	waitDone(t, sub)
	assert.Equal(t, StateCancelled, sub.State())
}

func TestGoroutineID(t *testing.T) {
	own := goroutineID()
	require.NotZero(t, own)
	assert.Equal(t, own, goroutineID())

	other := make(chan uint64)
	go func() { other <- goroutineID() }()
	assert.NotEqual(t, own, <-other)
}

func TestSubscription_DoubleCancel(t *testing.T) {
	stream := newChanStream(1)
	rec := &recorder{}

	sub, err := newWatch(t, &fakeTransport{streams: []*chanStream{stream}})(context.Background(), nil, rec.handlers())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		sub.Cancel()
		sub.Cancel()
	})
	waitDone(t, sub)
	sub.Cancel()

	events, errs, ends := rec.snapshot()
	assert.Empty(t, events)
	assert.Zero(t, errs)
	assert.Zero(t, ends)
	assert.Equal(t, StateCancelled, sub.State())
}

// TestSubscription_CancelAfterEnd keeps the Ended state.
func TestSubscription_CancelAfterEnd(t *testing.T) {
	stream := newChanStream(1)
	stream.finish()

	sub, err := newWatch(t, &fakeTransport{streams: []*chanStream{stream}})(context.Background(), nil, Handlers[testEvent]{})
	require.NoError(t, err)
	waitDone(t, sub)

	sub.Cancel()

	assert.Equal(t, StateEnded, sub.State())
}

// TestSubscription_CancelWhileOpening aborts a stream that has not been
// established yet.
func TestSubscription_CancelWhileOpening(t *testing.T) {
	ft := &fakeTransport{blockOpen: true}
	sub := newSubscription(func(ctx context.Context) (transport.Stream, error) {
		return ft.ServerStream(ctx, "/test.v1.ThingService/WatchThings", nil)
	}, Handlers[testEvent]{OnError: func(error) { t.Error("OnError after cancel") }})

	errc := make(chan error, 1)
	go func() { errc <- sub.start(context.Background()) }()

	require.Eventually(t, func() bool {
		ft.mu.Lock()
		defer ft.mu.Unlock()
		return len(ft.procedures) == 1
	}, waitTimeout, 5*time.Millisecond)
	sub.Cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("start did not return after cancel")
	}
	waitDone(t, sub)
	assert.Equal(t, StateCancelled, sub.State())
}

// ── Restart ─────────────────────────────────────────────────────────────────

func TestSubscription_Restart(t *testing.T) {
	first, second := newChanStream(2), newChanStream(2)
	first.events <- &testEvent{ID: "a"}
	first.finish()
	second.events <- &testEvent{ID: "b"}
	ft := &fakeTransport{streams: []*chanStream{first, second}}
	rec := &recorder{}

	sub, err := newWatch(t, ft)(context.Background(), &testRequest{Filter: "x"}, rec.handlers())
	require.NoError(t, err)
	waitDone(t, sub)
	require.Equal(t, StateEnded, sub.State())

	require.NoError(t, sub.Restart(context.Background()))
	assert.Equal(t, StateActive, sub.State())
	assert.ErrorIs(t, sub.Restart(context.Background()), ErrSubscriptionActive)

	second.finish()
	waitDone(t, sub)

	events, _, ends := rec.snapshot()
	assert.Equal(t, []string{"a", "b"}, events)
	assert.Equal(t, 2, ends)
	assert.Equal(t, uint64(2), sub.Seq())
}

func TestSubscription_RestartFailure(t *testing.T) {
	stream := newChanStream(1)
	stream.finish()
	ft := &fakeTransport{streams: []*chanStream{stream}}

	sub, err := newWatch(t, ft)(context.Background(), nil, Handlers[testEvent]{})
	require.NoError(t, err)
	waitDone(t, sub)

	ft.streamErr = errors.New("dial refused")
	err = sub.Restart(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateFailed, sub.State())
	waitDone(t, sub)
}

func TestSubscriptionState_String(t *testing.T) {
	assert.Equal(t, "active", StateActive.String())
	assert.False(t, StateActive.Terminal())
	assert.True(t, StateCancelled.Terminal())
	assert.True(t, StateEnded.Terminal())
	assert.True(t, StateFailed.Terminal())
}
