// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] can be used at startup.
// Fields left empty are allowed here; they are filled by the defaults layer
// before the client view is built. Endpoint URLs are validated by the
// transport provider, which owns URL normalisation.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Transport.Protocol {
	case "", ProtocolConnect, ProtocolGRPC:
	default:
		return fmt.Errorf("%w: unsupported protocol %q", ErrInvalidTransportConfigs, cfg.Transport.Protocol)
	}

	if cfg.Transport.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidTransportConfigs)
	}

	if cfg.App.PageSize < 0 {
		return fmt.Errorf("%w: negative page size", ErrInvalidAppConfigs)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Endpoints.BFF == "" || cfg.Endpoints.Gateway == "" {
		return ErrInvalidEndpointConfigs
	}

	if cfg.Transport.Protocol == "" || cfg.Transport.RequestTimeout == 0 {
		return ErrInvalidTransportConfigs
	}

	if cfg.App.PageSize == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
