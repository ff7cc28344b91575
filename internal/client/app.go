package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/axle-client/internal/config"
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/rpc/bff"
	"github.com/MKhiriev/axle-client/internal/rpc/gateway"
	"github.com/MKhiriev/axle-client/internal/store"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/internal/tui"
	"github.com/MKhiriev/axle-client/internal/workers"
	"github.com/MKhiriev/axle-client/models"
)

type App struct {
	provider *transport.Provider
	ui       *tui.TUI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp builds transports, typed clients, list stores and the terminal UI
// from cfg. No connection is made until the UI issues its first call.
func NewApp(cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	provider, err := transport.NewProvider(cfg.Endpoints, transport.Options{
		Protocol:     cfg.Transport.Protocol,
		Timeout:      cfg.Transport.RequestTimeout,
		Interceptors: transport.DefaultInterceptors(log),
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("create transport provider: %w", err)
	}

	ui, err := newUI(provider, cfg, info, log)
	if err != nil {
		return nil, errors.Join(err, provider.Close())
	}

	refresh := workers.NewRefreshJob("visible-list", workers.RefreshFunc(ui.RefreshCurrent), cfg.Workers.RefreshInterval, log)

	return &App{
		provider: provider,
		ui:       ui,
		workers:  workers.NewWorkers(refresh),
		logger:   log,
	}, nil
}

func newUI(provider *transport.Provider, cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*tui.TUI, error) {
	bffTransport, err := provider.Transport(config.EndpointBFF)
	if err != nil {
		return nil, err
	}
	gatewayTransport, err := provider.Transport(config.EndpointGateway)
	if err != nil {
		return nil, err
	}

	projects, err := bff.NewProjectServiceClient(bffTransport)
	if err != nil {
		return nil, err
	}
	users, err := bff.NewUserServiceClient(bffTransport)
	if err != nil {
		return nil, err
	}
	streaming, err := gateway.NewStreamingServiceClient(gatewayTransport)
	if err != nil {
		return nil, err
	}

	return tui.New(tui.Deps{
		Projects:      store.NewProjectsStore(projects, store.WithLogger(log)),
		Users:         store.NewUsersStore(users, store.WithLogger(log)),
		ProjectClient: projects,
		UserClient:    users,
		Streaming:     streaming,
		PageSize:      cfg.App.PageSize,
		BuildInfo:     info,
		Endpoints: []string{
			config.EndpointBFF + ": " + bffTransport.Endpoint(),
			config.EndpointGateway + ": " + gatewayTransport.Endpoint(),
		},
	}, log)
}

// Run shows the UI with the refresh job running in the background and
// releases every transport on return.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.provider.Close(); err != nil {
			a.logger.Err(err).Msg("error closing transports")
		}
	}()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
