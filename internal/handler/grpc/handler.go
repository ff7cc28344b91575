package grpc

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/service"
	"github.com/MKhiriev/axle-client/internal/transport"
)

// Handler is the root gRPC transport handler.
//
// It registers bff.v1 and gateway.v1 with a gRPC server. Messages travel
// as JSON, so no protobuf code is involved.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// ServerOptions returns the options a server hosting h needs: the JSON
// codec, tracing and the request-scoped logging interceptors.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ForceServerCodec(transport.JSONCodec{}),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(h.unaryRequestID, unaryLogging),
		grpc.ChainStreamInterceptor(h.streamRequestID, streamLogging),
	}
}

// BFF registers the project and user services with s.
func (h *Handler) BFF(s grpc.ServiceRegistrar) {
	s.RegisterService(&ProjectServiceDesc, h.services.ProjectService)
	s.RegisterService(&UserServiceDesc, h.services.UserService)
}

// Gateway registers the streaming service with s.
func (h *Handler) Gateway(s grpc.ServiceRegistrar) {
	s.RegisterService(&StreamingServiceDesc, h.services.StreamingService)
}
