// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/MKhiriev/axle-client/internal/transport"
)

// ErrSubscriptionActive is returned by Restart while a run is in progress.
var ErrSubscriptionActive = errors.New("subscription is still active")

// SubscriptionState is the lifecycle state of a [Subscription].
type SubscriptionState int32

const (
	StateIdle SubscriptionState = iota
	StateActive
	StateCancelled
	StateEnded
	StateFailed
)

func (s SubscriptionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCancelled:
		return "cancelled"
	case StateEnded:
		return "ended"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further callbacks can happen in this state.
func (s SubscriptionState) Terminal() bool {
	return s == StateCancelled || s == StateEnded || s == StateFailed
}

type openFunc func(ctx context.Context) (transport.Stream, error)

// Subscription is the handle of one server-streaming call.
//
// Events reach Handlers.OnEvent in arrival order from a single goroutine.
// The stream finishes in exactly one terminal state: Ended (OnEnd),
// Failed (OnError) or Cancelled (no callback). There is no automatic
// reconnect; Restart must be called explicitly.
type Subscription[E any] struct {
	open     openFunc
	handlers Handlers[E]

	mu     sync.Mutex
	state  SubscriptionState
	gen    uint64
	seq    uint64
	err    error
	cancel context.CancelFunc
	stream transport.Stream
	done   chan struct{}

	// callback is closed when the running handler returns; nil when none
	// runs. caller is the goroutine running it.
	callback chan struct{}
	caller   uint64
}

func newSubscription[E any](open openFunc, h Handlers[E]) *Subscription[E] {
	return &Subscription[E]{open: open, handlers: h, done: make(chan struct{})}
}

// State returns the current lifecycle state.
func (s *Subscription[E]) State() SubscriptionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Seq returns the number of events delivered so far. It keeps counting
// across restarts.
func (s *Subscription[E]) Seq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Err returns the failure that moved the subscription to Failed, or nil.
func (s *Subscription[E]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed once the current run has released its stream.
func (s *Subscription[E]) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Cancel stops the subscription. Once it returns no callback is running or
// will start, even for events already buffered by the transport. A handler
// running on the receive goroutine is waited for, except when Cancel is
// called from inside that handler. Cancel is idempotent.
func (s *Subscription[E]) Cancel() {
	s.mu.Lock()
	live := s.state == StateIdle || s.state == StateActive
	if live {
		s.state = StateCancelled
	}
	cancel, stream := s.cancel, s.stream
	wait := s.callback
	if wait != nil && s.caller == goroutineID() {
		wait = nil
	}
	s.mu.Unlock()

	if live {
		if cancel != nil {
			cancel()
		}
		if stream != nil {
			_ = stream.Close()
		}
	}
	if wait != nil {
		<-wait
	}
}

// Restart opens a fresh stream with the original request and handlers. It
// fails with ErrSubscriptionActive unless the subscription is terminal.
func (s *Subscription[E]) Restart(ctx context.Context) error {
	s.mu.Lock()
	if !s.state.Terminal() {
		s.mu.Unlock()
		return ErrSubscriptionActive
	}
	s.state = StateIdle
	s.err = nil
	s.stream = nil
	s.done = make(chan struct{})
	s.mu.Unlock()

	return s.start(ctx)
}

func (s *Subscription[E]) start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.gen++
	gen, done := s.gen, s.done
	s.cancel = cancel
	s.mu.Unlock()

	stream, err := s.open(ctx)

	s.mu.Lock()
	if s.state != StateIdle || s.gen != gen {
		// cancelled while opening
		s.mu.Unlock()
		cancel()
		if stream != nil {
			_ = stream.Close()
		}
		close(done)
		return nil
	}
	if err != nil {
		s.state = StateFailed
		s.err = err
		s.mu.Unlock()
		cancel()
		close(done)
		return err
	}
	s.state = StateActive
	s.stream = stream
	s.mu.Unlock()

	go s.run(gen, stream, cancel, done)
	return nil
}

func (s *Subscription[E]) run(gen uint64, stream transport.Stream, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()
	defer stream.Close()

	self := goroutineID()

	for {
		ev := new(E)
		err := stream.Receive(ev)
		if errors.Is(err, io.EOF) {
			s.finish(self, gen, StateEnded, nil)
			return
		}
		if err != nil {
			s.finish(self, gen, StateFailed, err)
			return
		}
		if !s.deliver(self, gen, ev) {
			return
		}
	}
}

// deliver runs OnEvent if the run is still the active one. The state check
// and the start of the callback happen under the lock Cancel takes, and
// Cancel waits for the callback to return.
func (s *Subscription[E]) deliver(self, gen uint64, ev *E) bool {
	s.mu.Lock()
	if s.gen != gen || s.state != StateActive {
		s.mu.Unlock()
		return false
	}
	s.seq++
	end := s.enterCallback(self)
	s.mu.Unlock()

	defer end()
	if s.handlers.OnEvent != nil {
		s.handlers.OnEvent(ev)
	}
	return true
}

func (s *Subscription[E]) finish(self, gen uint64, state SubscriptionState, err error) {
	s.mu.Lock()
	if s.gen != gen || s.state != StateActive {
		s.mu.Unlock()
		return
	}
	s.state = state
	s.err = err
	s.stream = nil
	end := s.enterCallback(self)
	s.mu.Unlock()

	defer end()
	switch state {
	case StateEnded:
		if s.handlers.OnEnd != nil {
			s.handlers.OnEnd()
		}
	case StateFailed:
		if s.handlers.OnError != nil {
			s.handlers.OnError(err)
		}
	}
}

// enterCallback marks a handler as running on goroutine self. It must be
// called with s.mu held; the returned func clears the mark.
func (s *Subscription[E]) enterCallback(self uint64) (end func()) {
	ch := make(chan struct{})
	s.callback, s.caller = ch, self
	return func() {
		s.mu.Lock()
		if s.callback == ch {
			s.callback, s.caller = nil, 0
		}
		s.mu.Unlock()
		close(ch)
	}
}
