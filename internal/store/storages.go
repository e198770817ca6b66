package store

import (
	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/spf13/afero"
)

type Storages struct {
	UploadFileStorage UploadFileStorage
}

// NewStorages builds the storages on the OS filesystem and makes sure the
// uploads directory exists.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	return NewStoragesOnFs(afero.NewOsFs(), cfg, logger)
}

// NewStoragesOnFs is [NewStorages] on an arbitrary filesystem.
func NewStoragesOnFs(fs afero.Fs, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("uploads_dir", cfg.Files.UploadsDir).Msg("creating storages...")

	uploads := NewUploadFileStorage(fs, cfg.Files, logger)
	if err := uploads.EnsureDir(); err != nil {
		return nil, err
	}

	return &Storages{
		UploadFileStorage: uploads,
	}, nil
}
