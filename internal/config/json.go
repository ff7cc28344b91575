package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		PageSize int32  `json:"page_size"`
	} `json:"app,omitempty"`

	Endpoints Endpoints `json:"endpoints,omitempty"`

	Transport struct {
		Protocol       string   `json:"protocol"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"transport,omitempty"`

	Telemetry struct {
		OTLPEndpoint string `json:"otlp_endpoint"`
	} `json:"telemetry,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	DevServer struct {
		BFFAddress     string      `json:"bff_address"`
		GatewayAddress string      `json:"gateway_address"`
		DB             DevServerDB `json:"db"`
	} `json:"devserver,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			PageSize: jsonCfg.App.PageSize,
		},
		Endpoints: jsonCfg.Endpoints,
		Transport: Transport{
			Protocol:       jsonCfg.Transport.Protocol,
			RequestTimeout: time.Duration(jsonCfg.Transport.RequestTimeout),
		},
		Telemetry: Telemetry{
			OTLPEndpoint: jsonCfg.Telemetry.OTLPEndpoint,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		DevServer: DevServer{
			BFFAddress:     jsonCfg.DevServer.BFFAddress,
			GatewayAddress: jsonCfg.DevServer.GatewayAddress,
			DB:             jsonCfg.DevServer.DB,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
