package handler

import (
	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/handler/http"
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
