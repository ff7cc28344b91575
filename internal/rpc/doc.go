// Package rpc turns a declarative service description and a
// [transport.Transport] into typed call functions.
//
// Unary methods become func(ctx, *Req) (*Resp, error); server-streaming
// methods become functions returning a cancellable [Subscription] that
// pushes events to callbacks.
package rpc
