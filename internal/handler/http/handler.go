package http

import (
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/service"
)

type Handler struct {
	services *service.Services

	// version is the build version reported by the health endpoint.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
