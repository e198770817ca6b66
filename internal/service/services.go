package service

import (
	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	UploadService  UploadService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	uploadService := NewUploadLoggingService(logger).
		Wrap(NewUploadService(storages.UploadFileStorage, cfg.Upload, logger))

	return &Services{
		AppInfoService: appInfoService,
		UploadService:  uploadService,
	}, nil
}
