package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidEndpointConfigs indicates a missing endpoint base URL.
	ErrInvalidEndpointConfigs = errors.New("invalid endpoint configuration")
	// ErrInvalidTransportConfigs indicates an unsupported protocol or a bad
	// request timeout.
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidDevServerConfigs indicates an unknown storage driver or a
	// SQL driver without a DSN.
	ErrInvalidDevServerConfigs = errors.New("invalid devserver configuration")
	// ErrUnknownEndpoint is returned by [Endpoints.Resolve] for names that are
	// not configured.
	ErrUnknownEndpoint = errors.New("unknown endpoint")
)
