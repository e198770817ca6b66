package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/models"
	"github.com/dustin/go-humanize"
)

type UploadLoggingService struct {
	inner  UploadService
	logger *logger.Logger
}

func NewUploadLoggingService(logger *logger.Logger) UploadServiceWrapper {
	return &UploadLoggingService{logger: logger}
}

func (l *UploadLoggingService) NewSession(params models.UploadSessionParams) *models.UploadSession {
	return l.inner.NewSession(params)
}

func (l *UploadLoggingService) Ingest(ctx context.Context, session *models.UploadSession, body io.Reader, observer ProgressObserver) (models.UploadOutcome, error) {
	log := logger.FromContextOr(ctx, l.logger)
	start := time.Now()

	outcome, err := l.inner.Ingest(ctx, session, body, observer)

	event := log.Info()
	switch {
	case errors.Is(err, ErrStorage):
		event = log.Error().Err(err)
	case err != nil:
		event = log.Warn().Err(err)
	case outcome == models.OutcomeInjectedFailure:
		event = log.Warn()
	}

	event.
		Str("session_id", session.ID).
		Str("path", session.DestinationPath()).
		Str("kind", outcome.String()).
		Str("state", session.State().String()).
		Int64("received", session.ReceivedBytes()).
		Str("received_human", humanize.IBytes(uint64(session.ReceivedBytes()))).
		Int64("total", session.DeclaredTotalBytes).
		Dur("elapsed", time.Since(start)).
		Msg("upload finished")

	return outcome, err
}

func (l *UploadLoggingService) ActiveSessions() []models.UploadProgress {
	return l.inner.ActiveSessions()
}

func (l *UploadLoggingService) Close() {
	l.logger.Info().Int("active_sessions", len(l.inner.ActiveSessions())).Msg("closing completion gate")
	l.inner.Close()
}

func (l *UploadLoggingService) Wrap(wrapper UploadService) UploadService {
	l.inner = wrapper
	return l
}
