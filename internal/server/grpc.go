package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/axle-client/internal/logger"
)

type grpcServer struct {
	name string

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

// newGRPCServer listens on address and registers services through
// register.
func newGRPCServer(name, address string, opts []grpc.ServerOption, register func(grpc.ServiceRegistrar), logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%s: listen on %s: %w", name, address, err)
	}

	s := grpc.NewServer(opts...)
	register(s)

	return &grpcServer{
		name:            name,
		server:          s,
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Name() string { return g.name }

func (g *grpcServer) Addr() string { return g.gRPCNetListener.Addr().String() }

func (g *grpcServer) RunServer() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("%s: gRPC server Serve: %w", g.name, err)
	}
	return nil
}

// Shutdown stops gracefully, forcing the stop when ctx ends first.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Str("server", g.name).Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return fmt.Errorf("%s: gRPC server Shutdown: %w", g.name, ctx.Err())
	}
}

func (g *grpcServer) Close() error {
	return g.gRPCNetListener.Close()
}
