package config

import "time"

// Defaults for settings that have no natural zero value.
const (
	DefaultProtocol       = ProtocolConnect
	DefaultRequestTimeout = 15 * time.Second
	DefaultLogLevel       = "info"
	DefaultPageSize       = 20

	DefaultDevServerBFFAddress     = "localhost:9001"
	DefaultDevServerGatewayAddress = "localhost:8081"
	DefaultDevServerDBDriver       = DBDriverMemory
)

// Storage drivers of the development server.
const (
	DBDriverMemory   = "memory"
	DBDriverSQLite   = "sqlite3"
	DBDriverPostgres = "pgx"
)

// Supported transport protocols.
const (
	ProtocolConnect = "connect"
	ProtocolGRPC    = "grpc"
)

// defaultConfig is merged last so that it only fills fields no other source
// has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			PageSize: DefaultPageSize,
		},
		Endpoints: Endpoints{
			BFF:     DefaultBFFURL,
			Gateway: DefaultGatewayURL,
		},
		Transport: Transport{
			Protocol:       DefaultProtocol,
			RequestTimeout: DefaultRequestTimeout,
		},
		DevServer: DevServer{
			BFFAddress:     DefaultDevServerBFFAddress,
			GatewayAddress: DefaultDevServerGatewayAddress,
			DB:             DevServerDB{Driver: DefaultDevServerDBDriver},
		},
	}
}
