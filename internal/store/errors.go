package store

import "errors"

// Sentinel errors returned by the upload storage to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrCreatingUploadDir is returned when the uploads directory cannot be
	// created at startup.
	ErrCreatingUploadDir = errors.New("error creating uploads directory")

	// ErrCreatingUploadFile is returned when the destination file of a
	// session cannot be opened for writing (permission denied, missing
	// directory, read-only filesystem, ...).
	ErrCreatingUploadFile = errors.New("error creating upload file")

	// ErrWritingUploadFile is returned when writing or closing an open
	// destination file fails.
	ErrWritingUploadFile = errors.New("error writing upload file")

	// ErrStorageFull is joined to the errors above when the underlying
	// device reports that no space is left.
	ErrStorageFull = errors.New("no space left for upload")
)
