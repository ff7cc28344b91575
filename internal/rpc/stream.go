package rpc

import (
	"context"

	"github.com/MKhiriev/axle-client/internal/transport"
)

// Handlers receive the outcome of a subscription. Nil handlers are skipped.
// All of them run on the subscription's receive goroutine.
type Handlers[E any] struct {
	OnEvent func(*E)
	OnError func(error)
	OnEnd   func()
}

// StreamFunc opens a server stream and returns its handle in the Active
// state. An error means the stream could not be opened; no handler runs in
// that case.
type StreamFunc[Req, E any] func(ctx context.Context, req *Req, h Handlers[E]) (*Subscription[E], error)

// NewServerStream returns the subscribe function for a server-streaming
// method of c.
func NewServerStream[Req, E any](c *Client, method string) (StreamFunc[Req, E], error) {
	procedure, err := c.procedure(method, MethodServerStream)
	if err != nil {
		return nil, err
	}

	t := c.transport
	return func(ctx context.Context, req *Req, h Handlers[E]) (*Subscription[E], error) {
		if req == nil {
			req = new(Req)
		}
		sub := newSubscription(func(ctx context.Context) (transport.Stream, error) {
			return t.ServerStream(ctx, procedure, req)
		}, h)
		if err := sub.start(ctx); err != nil {
			return nil, err
		}
		return sub, nil
	}, nil
}
