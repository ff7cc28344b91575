package http

import (
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/service"
	"github.com/MKhiriev/axle-client/internal/transport"
)

type Handler struct {
	services *service.Services
	codec    transport.Codec

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("connect handler created")
	return &Handler{
		services: services,
		codec:    transport.JSONCodec{},
		logger:   logger,
	}
}
