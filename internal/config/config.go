// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name read by
// [parseEnv].
const EnvPrefix = "AXLE_"

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the client application itself.
	App App `envPrefix:"APP_"`

	// Endpoints holds the base URLs of the remote services.
	Endpoints Endpoints

	// Transport holds the RPC transport settings shared by all endpoints.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Telemetry holds tracing exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// DevServer holds settings of the local development server. The client
	// ignores this group.
	DevServer DevServer `envPrefix:"DEVSERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the AXLE_CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client application settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: AXLE_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PageSize is the number of items requested per list page.
	// Env: AXLE_APP_PAGE_SIZE
	PageSize int32 `env:"PAGE_SIZE"`
}

// Transport holds RPC transport settings.
type Transport struct {
	// Protocol selects the wire protocol: "connect" or "grpc".
	// Env: AXLE_TRANSPORT_PROTOCOL
	Protocol string `env:"PROTOCOL"`

	// RequestTimeout bounds a single unary call when the caller's context
	// carries no deadline. Streams are not bounded by it.
	// Env: AXLE_TRANSPORT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Telemetry holds tracing settings.
type Telemetry struct {
	// OTLPEndpoint is the host:port of an OTLP/HTTP collector. Tracing is
	// disabled when empty.
	// Env: AXLE_TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is the period of the automatic list refresh.
	// Zero disables the job.
	// Env: AXLE_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// DevServer holds listen addresses and persistence settings of the
// development server. It serves the protocol selected by Transport.Protocol.
type DevServer struct {
	// BFFAddress is the host:port the bff services listen on.
	// Env: AXLE_DEVSERVER_BFF_ADDRESS
	BFFAddress string `env:"BFF_ADDRESS"`

	// GatewayAddress is the host:port the streaming gateway listens on.
	// Env: AXLE_DEVSERVER_GATEWAY_ADDRESS
	GatewayAddress string `env:"GATEWAY_ADDRESS"`

	// DB selects the storage backend.
	DB DevServerDB `envPrefix:"DB_"`
}

// DevServerDB selects the development server storage backend.
type DevServerDB struct {
	// Driver is "memory", "sqlite3" or "pgx".
	// Env: AXLE_DEVSERVER_DB_DRIVER
	Driver string `env:"DRIVER" json:"driver"`

	// DSN is a file path for sqlite3 or a connection URL for pgx.
	// Env: AXLE_DEVSERVER_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
