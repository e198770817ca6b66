package http

import (
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/internal/service"
)

// Handler serves the upload endpoint. It holds no per-request state; every
// session lives in the upload service for the duration of its exchange.
type Handler struct {
	uploads service.UploadService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("version_header", services.AppInfoService != nil).
		Msg("upload handler created")

	return &Handler{
		uploads: services.UploadService,
		appInfo: services.AppInfoService,
		logger:  logger,
	}
}
