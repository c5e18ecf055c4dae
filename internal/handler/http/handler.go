package http

import (
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
)

type Handler struct {
	services       *service.ClientServices
	requestTimeout time.Duration
	now            func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
