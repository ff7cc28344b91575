package transport

import (
	"context"
	"net/http"
)

type headersKey struct{}

// WithHeader returns a copy of ctx carrying an outgoing request header.
// The Connect transport sends it as an HTTP header, the gRPC transport as
// metadata.
func WithHeader(ctx context.Context, key, value string) context.Context {
	prev := HeadersFromContext(ctx)
	next := make(http.Header, len(prev)+1)
	for k, v := range prev {
		next[k] = append([]string(nil), v...)
	}
	next.Set(key, value)
	return context.WithValue(ctx, headersKey{}, next)
}

// HeadersFromContext returns the outgoing headers stored in ctx. The result
// must not be modified.
func HeadersFromContext(ctx context.Context) http.Header {
	h, _ := ctx.Value(headersKey{}).(http.Header)
	return h
}
