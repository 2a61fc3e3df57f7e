package http

import (
	"github.com/MKhiriev/where-is-it/internal/config"
	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/service"
)

type Handler struct {
	services *service.Services
	app      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      cfg,
		logger:   logger,
	}
}
