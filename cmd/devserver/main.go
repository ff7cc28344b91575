package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/axle-client/internal/config"
	"github.com/MKhiriev/axle-client/internal/handler"
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/server"
	"github.com/MKhiriev/axle-client/internal/service"
	"github.com/MKhiriev/axle-client/internal/storage"
	"github.com/MKhiriev/axle-client/internal/telemetry"
	"github.com/MKhiriev/axle-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("axle-devserver")
	cfg, err := config.GetDevServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Setup(ctx, "axle-devserver", cfg.OTLPEndpoint, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up telemetry")
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Err(err).Msg("error flushing telemetry")
		}
	}()

	storages, err := storage.NewStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg.Protocol, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log, server.BeforeShutdown(services.Close))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server run error")
	}
}
