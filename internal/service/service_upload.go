// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/internal/store"
	"github.com/MKhiriev/upload-sink/internal/throttle"
	"github.com/MKhiriev/upload-sink/internal/utils"
	"github.com/MKhiriev/upload-sink/models"
)

type uploadService struct {
	storage  store.UploadFileStorage
	injector FailureInjector
	gate     *CompletionGate
	registry *SessionRegistry
	ids      *utils.UUIDGenerator
	clock    *utils.MonotonicClock

	rateLimit int
	chunkSize int

	logger *logger.Logger
}

func NewUploadService(storage store.UploadFileStorage, cfg config.Upload, logger *logger.Logger) UploadService {
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = utils.DefaultChunkSize
	}

	return &uploadService{
		storage:   storage,
		injector:  NewFailureInjector(cfg.FailThreshold),
		gate:      NewCompletionGate(cfg.CompletionDelay),
		registry:  NewSessionRegistry(),
		ids:       utils.NewUUIDGenerator(),
		clock:     utils.NewMonotonicClock(time.Now),
		rateLimit: cfg.RateLimit,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

func (s *uploadService) NewSession(params models.UploadSessionParams) *models.UploadSession {
	if params.ID == "" {
		params.ID = s.ids.Generate()
	}
	params.FileName = s.ids.FileName(params.FileName)
	if params.CreatedAt.IsZero() {
		params.CreatedAt = s.clock.Now()
	}
	params.DestinationPath = s.storage.DestinationPath(params.FileName, params.CreatedAt)

	return models.NewUploadSession(params)
}

func (s *uploadService) Ingest(ctx context.Context, session *models.UploadSession, body io.Reader, observer ProgressObserver) (models.UploadOutcome, error) {
	if observer == nil {
		observer = nopObserver
	}

	if err := s.registry.Add(session); err != nil {
		return models.OutcomeNone, err
	}
	defer s.registry.Remove(session.ID)

	file, err := s.storage.Create(ctx, session.DestinationPath())
	if err != nil {
		session.MarkFailed()
		return models.OutcomeStorageFailure, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	outcome, err := s.consume(ctx, session, body, file, observer)
	closeErr := file.Close()

	switch {
	case err != nil:
		return outcome, err
	case outcome == models.OutcomeInjectedFailure:
		return outcome, nil
	case closeErr != nil:
		session.MarkFailed()
		return models.OutcomeStorageFailure, fmt.Errorf("%w: %w", ErrStorage, closeErr)
	}

	if err = s.gate.Wait(ctx); err != nil {
		return models.OutcomeNone, fmt.Errorf("%w: %w", ErrShuttingDown, err)
	}

	session.MarkCompleted()
	return models.OutcomeCompleted, nil
}

// consume streams body into file chunk by chunk. It returns
// [models.OutcomeCompleted] at end-of-body without waiting on the gate.
func (s *uploadService) consume(ctx context.Context, session *models.UploadSession, body io.Reader, file io.Writer, observer ProgressObserver) (models.UploadOutcome, error) {
	sink := throttle.NewWriter(ctx, file, s.rateLimit)

	for chunk, err := range utils.Chunks(body, s.chunkSize) {
		if err != nil {
			return models.OutcomeNone, fmt.Errorf("%w: %w", ErrTransport, err)
		}

		session.AddReceived(len(chunk))
		observer.OnProgress(session.Snapshot())
		decision := s.injector.DecideFor(session)

		// every received byte reaches the file, including the chunk that
		// trips the injector
		if _, err = sink.Write(chunk); err != nil {
			if errors.Is(err, store.ErrWritingUploadFile) {
				session.MarkFailed()
				return models.OutcomeStorageFailure, fmt.Errorf("%w: %w", ErrStorage, err)
			}
			return models.OutcomeNone, fmt.Errorf("%w: %w", ErrTransport, err)
		}

		if decision == DecisionAbort {
			session.MarkFailed()
			return models.OutcomeInjectedFailure, nil
		}
	}

	return models.OutcomeCompleted, nil
}

func (s *uploadService) ActiveSessions() []models.UploadProgress {
	return s.registry.Snapshot()
}

func (s *uploadService) Close() {
	s.gate.Close()
}
