package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/axle-client/internal/config"
	"github.com/MKhiriev/axle-client/internal/handler"
	"github.com/MKhiriev/axle-client/internal/logger"
)

// ShutdownTimeout bounds the graceful stop of every listener.
const ShutdownTimeout = 10 * time.Second

const (
	NameBFF     = "bff"
	NameGateway = "gateway"
)

type Option func(*server)

// BeforeShutdown registers fn to run once the server starts stopping and
// before listeners drain. Closing event streams here lets them finish.
func BeforeShutdown(fn func()) Option {
	return func(s *server) {
		s.beforeShutdown = append(s.beforeShutdown, fn)
	}
}

type server struct {
	servers        []transportServer
	beforeShutdown []func()

	logger *logger.Logger
}

// NewServer binds the bff and gateway listeners for the protocol whose
// handler is set in handlers.
func NewServer(handlers *handler.Handlers, cfg *config.DevServerConfig, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	switch {
	case handlers.HTTP != nil:
		err = s.addHTTP(handlers, cfg)
	case handlers.GRPC != nil:
		err = s.addGRPC(handlers, cfg)
	default:
		return nil, errNoServersAreCreated
	}
	if err != nil {
		s.closeListeners()
		return nil, err
	}

	return s, nil
}

func (s *server) addHTTP(handlers *handler.Handlers, cfg *config.DevServerConfig) error {
	router := handlers.HTTP.Init()
	for _, l := range []struct{ name, addr string }{{NameBFF, cfg.BFFAddress}, {NameGateway, cfg.GatewayAddress}} {
		srv, err := newHTTPServer(l.name, l.addr, router, s.logger)
		if err != nil {
			return err
		}
		s.servers = append(s.servers, srv)
	}
	return nil
}

func (s *server) addGRPC(handlers *handler.Handlers, cfg *config.DevServerConfig) error {
	h := handlers.GRPC

	bff, err := newGRPCServer(NameBFF, cfg.BFFAddress, h.ServerOptions(), h.BFF, s.logger)
	if err != nil {
		return err
	}
	s.servers = append(s.servers, bff)

	gateway, err := newGRPCServer(NameGateway, cfg.GatewayAddress, h.ServerOptions(), h.Gateway, s.logger)
	if err != nil {
		return err
	}
	s.servers = append(s.servers, gateway)
	return nil
}

func (s *server) closeListeners() {
	for _, srv := range s.servers {
		_ = srv.Close()
	}
}

func (s *server) Addrs() map[string]string {
	addrs := make(map[string]string, len(s.servers))
	for _, srv := range s.servers {
		addrs[srv.Name()] = srv.Addr()
	}
	return addrs
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers {
		s.logger.Info().Str("server", srv.Name()).Str("address", srv.Addr()).Msg("launching server")
		g.Go(srv.RunServer)
	}

	// listen for stop signals or a failed listener
	g.Go(func() error {
		<-gctx.Done()

		for _, fn := range s.beforeShutdown {
			fn()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range s.servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
