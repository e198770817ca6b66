package service

import (
	"context"
	"io"

	"github.com/MKhiriev/upload-sink/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UploadService ingests upload bodies: it stores them through a paced sink,
// tracks progress, injects failures and gates completion.
type UploadService interface {
	// NewSession creates a session in the receiving state from the values
	// parsed from request headers. It assigns the session ID, the creation
	// stamp and a collision-free destination path, and replaces an unusable
	// file name with a generated placeholder.
	NewSession(params models.UploadSessionParams) *models.UploadSession

	// Ingest consumes body for session until end-of-body, an injected
	// abort, a storage error or a transport error, and returns the terminal
	// outcome. Injected failures are an outcome, not an error.
	Ingest(ctx context.Context, session *models.UploadSession, body io.Reader, observer ProgressObserver) (models.UploadOutcome, error)

	// ActiveSessions returns a snapshot of every session currently being
	// ingested.
	ActiveSessions() []models.UploadProgress

	// Close releases every session waiting on the completion delay. It is
	// called once, at process shutdown.
	Close()
}

// ProgressObserver receives a progress snapshot after every body chunk.
// Implementations must not block for long: they run on the ingestion path.
type ProgressObserver interface {
	OnProgress(progress models.UploadProgress)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UploadServiceWrapper defines middleware composition for UploadService.
// Implementations wrap an existing UploadService to add behavior such as
// logging.
type UploadServiceWrapper interface {
	Wrap(UploadService) UploadService // returns a decorated UploadService applying additional behavior
}
