package transport

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/axle-client/internal/config"
)

// Provider maps symbolic endpoint names to shared transports. Each name is
// built once on first use; later requests return the same instance.
type Provider struct {
	endpoints config.Endpoints
	opts      Options

	mu         sync.Mutex
	transports map[string]Transport
	closed     bool
}

// NewProvider validates every configured endpoint address and returns a
// provider that builds transports lazily. An invalid address fails here
// rather than on the first call.
func NewProvider(endpoints config.Endpoints, opts Options) (*Provider, error) {
	opts = opts.withDefaults()
	if opts.Protocol != config.ProtocolConnect && opts.Protocol != config.ProtocolGRPC {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, opts.Protocol)
	}

	for _, name := range endpoints.Names() {
		raw, _ := endpoints.Resolve(name)
		if _, err := normalizeBaseURL(raw); err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", name, err)
		}
	}

	return &Provider{
		endpoints:  endpoints,
		opts:       opts,
		transports: make(map[string]Transport),
	}, nil
}

// Transport returns the shared transport for name ("bff" or "gateway").
func (p *Provider) Transport(name string) (Transport, error) {
	raw, err := p.endpoints.Resolve(name)
	if err != nil {
		if errors.Is(err, config.ErrUnknownEndpoint) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, name)
		}
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(name))

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}
	if t, ok := p.transports[key]; ok {
		return t, nil
	}

	t, err := New(raw, p.opts)
	if err != nil {
		return nil, fmt.Errorf("endpoint %q: %w", name, err)
	}
	p.transports[key] = t
	return t, nil
}

// Close closes every transport built so far. Transport fails with
// ErrClosed afterwards.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	for name, t := range p.transports {
		if err := t.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s transport: %w", name, err))
		}
	}
	clear(p.transports)
	return errors.Join(errs...)
}
