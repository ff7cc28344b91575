package config

import "fmt"

// DevServerConfig is the development server view of [StructuredConfig].
type DevServerConfig struct {
	LogLevel       string
	Protocol       string
	BFFAddress     string
	GatewayAddress string
	DB             DevServerDB
	OTLPEndpoint   string
}

// GetDevServerConfig builds and validates the development server
// configuration. args are the command-line arguments without the program
// name.
func GetDevServerConfig(args []string) (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevServerConfig{
		LogLevel:       cfg.App.LogLevel,
		Protocol:       cfg.Transport.Protocol,
		BFFAddress:     cfg.DevServer.BFFAddress,
		GatewayAddress: cfg.DevServer.GatewayAddress,
		DB:             cfg.DevServer.DB,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
	}
	return devCfg, devCfg.validate()
}

func (cfg *DevServerConfig) validate() error {
	if cfg.BFFAddress == "" || cfg.GatewayAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidDevServerConfigs)
	}
	if cfg.BFFAddress == cfg.GatewayAddress {
		return fmt.Errorf("%w: bff and gateway share address %s", ErrInvalidDevServerConfigs, cfg.BFFAddress)
	}

	switch cfg.DB.Driver {
	case DBDriverMemory:
	case DBDriverSQLite, DBDriverPostgres:
		if cfg.DB.DSN == "" {
			return fmt.Errorf("%w: driver %s requires a DSN", ErrInvalidDevServerConfigs, cfg.DB.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidDevServerConfigs, cfg.DB.Driver)
	}

	return nil
}
