package handler

import (
	"github.com/MKhiriev/axle-client/internal/config"
	"github.com/MKhiriev/axle-client/internal/handler/grpc"
	"github.com/MKhiriev/axle-client/internal/handler/http"
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/service"
)

// Handlers holds the transport handler for the configured protocol. Exactly
// one of HTTP and GRPC is set.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, protocol string, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("protocol", protocol).Msg("creating new handlers...")

	switch protocol {
	case "", config.ProtocolConnect:
		return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
	case config.ProtocolGRPC:
		return &Handlers{GRPC: grpc.NewHandler(services, logger)}, nil
	default:
		return nil, errNoHandlersAreCreated
	}
}
