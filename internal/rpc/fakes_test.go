package rpc

import (
	"context"
	"io"
	"sync"

	"github.com/MKhiriev/axle-client/internal/transport"
)

type testEvent struct {
	ID string `json:"id"`
}

type testRequest struct {
	Filter string `json:"filter"`
}

type testResponse struct {
	Echo string `json:"echo"`
}

// chanStream hands out buffered events before it looks at termination, so
// events can sit in the buffer after Close.
type chanStream struct {
	events    chan *testEvent
	end       chan error
	closed    chan struct{}
	closeOnce sync.Once
}

func newChanStream(buffer int) *chanStream {
	return &chanStream{
		events: make(chan *testEvent, buffer),
		end:    make(chan error, 1),
		closed: make(chan struct{}),
	}
}

func (s *chanStream) Receive(msg any) error {
	select {
	case ev := <-s.events:
		*(msg.(*testEvent)) = *ev
		return nil
	default:
	}

	select {
	case ev := <-s.events:
		*(msg.(*testEvent)) = *ev
		return nil
	case err := <-s.end:
		return err
	case <-s.closed:
		return &transport.CallError{Kind: transport.KindTransport, Code: transport.CodeCanceled}
	}
}

func (s *chanStream) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

func (s *chanStream) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func (s *chanStream) finish() {
	s.end <- io.EOF
}

type fakeTransport struct {
	mu         sync.Mutex
	procedures []string

	unary func(req, resp any) error

	streams   []*chanStream
	streamErr error
	// blockOpen makes ServerStream wait for its context to end.
	blockOpen bool
}

func (f *fakeTransport) Unary(_ context.Context, procedure string, req, resp any) error {
	f.mu.Lock()
	f.procedures = append(f.procedures, procedure)
	f.mu.Unlock()
	if f.unary == nil {
		return nil
	}
	return f.unary(req, resp)
}

func (f *fakeTransport) ServerStream(ctx context.Context, procedure string, _ any) (transport.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.procedures = append(f.procedures, procedure)

	if f.blockOpen {
		f.mu.Unlock()
		<-ctx.Done()
		f.mu.Lock()
		return nil, ctx.Err()
	}
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	s := f.streams[0]
	f.streams = f.streams[1:]
	return s, nil
}

func (f *fakeTransport) Endpoint() string { return "http://fake" }

func (f *fakeTransport) Close() error { return nil }
