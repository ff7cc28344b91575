package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-bff-url backend-for-frontend base URL
//	-gateway-url streaming gateway base URL
//	-protocol transport protocol (connect or grpc)
//	-request-timeout unary call timeout (e.g., "15s")
//	-log-level log level (debug, info, warn, error)
//	-page-size list page size
//	-otlp-endpoint OTLP/HTTP collector host:port
//	-refresh-interval automatic refresh period (e.g., "30s"), 0 disables
//	-bff-address devserver bff listen address in format [host]:[port]
//	-gateway-address devserver gateway listen address in format [host]:[port]
//	-db-driver devserver storage driver (memory, sqlite3, pgx)
//	-d devserver database DSN
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("axle", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		bffURL          string
		gatewayURL      string
		protocol        string
		requestTimeout  time.Duration
		logLevel        string
		pageSize        int
		otlpEndpoint    string
		refreshInterval time.Duration
		jsonConfigPath  string
		bffAddress      NetAddress
		gatewayAddress  NetAddress
		dbDriver        string
		databaseDSN     string
	)

	fs.StringVar(&bffURL, "bff-url", "", "BFF base URL")
	fs.StringVar(&gatewayURL, "gateway-url", "", "Streaming gateway base URL")
	fs.StringVar(&protocol, "protocol", "", "Transport protocol (connect, grpc)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&pageSize, "page-size", 0, "List page size")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP/HTTP collector host:port")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Automatic refresh interval (e.g., 30s)")
	fs.Var(&bffAddress, "bff-address", "Devserver bff address host:port")
	fs.Var(&gatewayAddress, "gateway-address", "Devserver gateway address host:port")
	fs.StringVar(&dbDriver, "db-driver", "", "Devserver storage driver (memory, sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Devserver database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			PageSize: int32(pageSize),
		},
		Endpoints: Endpoints{
			BFF:     bffURL,
			Gateway: gatewayURL,
		},
		Transport: Transport{
			Protocol:       protocol,
			RequestTimeout: requestTimeout,
		},
		Telemetry:    Telemetry{OTLPEndpoint: otlpEndpoint},
		Workers:   Workers{RefreshInterval: refreshInterval},
		DevServer: DevServer{
			BFFAddress:     bffAddress.String(),
			GatewayAddress: gatewayAddress.String(),
			DB:             DevServerDB{Driver: dbDriver, DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when it was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
