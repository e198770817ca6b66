// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/spf13/afero"
)

// dirMode is the permission set of the uploads directory.
const dirMode os.FileMode = 0o755

// uploadFileStorage is the default implementation of [UploadFileStorage].
type uploadFileStorage struct {
	fs   afero.Fs
	dir  string
	mode os.FileMode

	logger *logger.Logger
}

// NewUploadFileStorage constructs an [UploadFileStorage] writing into
// cfg.UploadsDir on fs with cfg.FileMode permissions.
func NewUploadFileStorage(fs afero.Fs, cfg config.Files, logger *logger.Logger) UploadFileStorage {
	return &uploadFileStorage{
		fs:     fs,
		dir:    cfg.UploadsDir,
		mode:   cfg.FileMode.Perm(),
		logger: logger,
	}
}

func (s *uploadFileStorage) DestinationPath(fileName string, createdAt time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("upload-%d-%s", createdAt.UnixMilli(), fileName))
}

func (s *uploadFileStorage) Create(ctx context.Context, path string) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreatingUploadFile, path, err)
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, s.mode)
	if err != nil {
		return nil, storageError(ErrCreatingUploadFile, path, err)
	}

	s.logger.Debug().Str("path", path).Str("mode", s.mode.String()).Msg("upload file created")

	return &uploadFile{file: f, path: path}, nil
}

func (s *uploadFileStorage) EnsureDir() error {
	if err := s.fs.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreatingUploadDir, s.dir, err)
	}
	return nil
}

// uploadFile maps filesystem errors onto the package sentinels.
type uploadFile struct {
	file afero.File
	path string
}

func (f *uploadFile) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if err != nil {
		return n, storageError(ErrWritingUploadFile, f.path, err)
	}
	return n, nil
}

func (f *uploadFile) Close() error {
	if err := f.file.Close(); err != nil {
		return storageError(ErrWritingUploadFile, f.path, err)
	}
	return nil
}

func storageError(kind error, path string, err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return fmt.Errorf("%w %s: %w: %w", kind, path, ErrStorageFull, err)
	}
	return fmt.Errorf("%w %s: %w", kind, path, err)
}
