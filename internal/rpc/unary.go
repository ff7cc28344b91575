package rpc

import "context"

// UnaryFunc performs one request/response exchange. Failures are
// *transport.CallError values.
type UnaryFunc[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// NewUnary returns the call function for a unary method of c. Each
// invocation performs exactly one exchange with no retry or caching.
func NewUnary[Req, Resp any](c *Client, method string) (UnaryFunc[Req, Resp], error) {
	procedure, err := c.procedure(method, MethodUnary)
	if err != nil {
		return nil, err
	}

	t := c.transport
	return func(ctx context.Context, req *Req) (*Resp, error) {
		if req == nil {
			req = new(Req)
		}
		resp := new(Resp)
		if err := t.Unary(ctx, procedure, req, resp); err != nil {
			return nil, err
		}
		return resp, nil
	}, nil
}
