package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the
// structured config.
type ClientApp struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// PageSize is the default list page size.
	PageSize int32
}

// ClientTransport holds settings used by the transport provider.
type ClientTransport struct {
	// Protocol is "connect" or "grpc".
	Protocol string
	// RequestTimeout is the default timeout for unary calls.
	RequestTimeout time.Duration
	// OTLPEndpoint enables tracing when non-empty.
	OTLPEndpoint string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the list refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Endpoints contains the resolved base URLs.
	Endpoints Endpoints
	// Transport contains protocol and timeout settings.
	Transport ClientTransport
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			PageSize: cfg.App.PageSize,
		},
		Endpoints: cfg.Endpoints,
		Transport: ClientTransport{
			Protocol:       cfg.Transport.Protocol,
			RequestTimeout: cfg.Transport.RequestTimeout,
			OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
