package rpc

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/axle-client/internal/transport"
)

// Client binds a service description to a transport. It holds no mutable
// state and never closes the transport it was given.
type Client struct {
	desc      ServiceDesc
	kinds     map[string]MethodKind
	transport transport.Transport
}

func NewClient(desc ServiceDesc, t transport.Transport) (*Client, error) {
	if t == nil {
		return nil, errors.New("rpc: nil transport")
	}
	if err := desc.validate(); err != nil {
		return nil, err
	}

	kinds := make(map[string]MethodKind, len(desc.Methods))
	for _, m := range desc.Methods {
		kinds[m.Name] = m.Kind
	}
	return &Client{desc: desc, kinds: kinds, transport: t}, nil
}

// Service returns the fully qualified service name.
func (c *Client) Service() string {
	return c.desc.Name
}

func (c *Client) procedure(method string, want MethodKind) (string, error) {
	kind, ok := c.kinds[method]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnknownMethod, c.desc.Name, method)
	}
	if kind != want {
		return "", fmt.Errorf("%w: %s/%s is %s, not %s", ErrMethodKind, c.desc.Name, method, kind, want)
	}
	return c.desc.Procedure(method), nil
}
