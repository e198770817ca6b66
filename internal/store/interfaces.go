// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists uploaded bodies.
//
// The only backend is a directory on an [afero.Fs]: the OS filesystem in
// production and an in-memory filesystem in tests. Files are written once,
// truncated on open and never deleted, so partially received uploads stay
// on disk for inspection.
package store

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UploadFileStorage creates destination files for upload sessions.
type UploadFileStorage interface {
	// DestinationPath composes <uploads-dir>/upload-<epoch-millis>-<fileName>.
	// fileName must already be sanitized.
	DestinationPath(fileName string, createdAt time.Time) string

	// Create opens path for writing with truncate-or-create semantics.
	// Errors from the returned writer wrap [ErrWritingUploadFile] and, when
	// the device is full, [ErrStorageFull].
	Create(ctx context.Context, path string) (io.WriteCloser, error)

	// EnsureDir creates the uploads directory if it does not exist.
	EnsureDir() error
}
