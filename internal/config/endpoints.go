package config

import (
	"fmt"
	"strings"
)

// Symbolic endpoint names understood by [Endpoints.Resolve].
const (
	EndpointBFF     = "bff"
	EndpointGateway = "gateway"
)

// Local development defaults used when an endpoint is not configured.
const (
	DefaultBFFURL     = "http://localhost:9001"
	DefaultGatewayURL = "http://localhost:8081"
)

// Endpoints maps symbolic service names to base URLs.
type Endpoints struct {
	// BFF is the backend-for-frontend base URL serving unary calls.
	// Env: AXLE_BFF_URL
	BFF string `env:"BFF_URL" json:"bff"`

	// Gateway is the streaming gateway base URL.
	// Env: AXLE_GATEWAY_URL
	Gateway string `env:"GATEWAY_URL" json:"gateway"`
}

// Resolve returns the base URL configured for name. Lookup is case
// insensitive. It does not validate the URL itself.
func (e Endpoints) Resolve(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EndpointBFF:
		return e.BFF, nil
	case EndpointGateway:
		return e.Gateway, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEndpoint, name)
	}
}

// Names lists every symbolic endpoint name in a stable order.
func (e Endpoints) Names() []string {
	return []string{EndpointBFF, EndpointGateway}
}
