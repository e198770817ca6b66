// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/internal/service"
	"github.com/MKhiriev/upload-sink/models"
)

// upload ingests the request body as one upload session and answers with
// the outcome. Transport failures and shutdown abort the exchange without
// a response.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	session := h.uploads.NewSession(models.UploadSessionParams{
		FileName:           r.Header.Get(models.HeaderFileName),
		DeclaredTotalBytes: declaredLength(r),
		ShouldFail:         models.ParseShouldFail(r.Header.Values(models.HeaderShouldFail)),
	})

	log := logger.FromRequest(r).WithStr("session_id", session.ID)
	log.Info().
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Str("proto", r.Proto).
		Interface("headers", r.Header).
		Str("path", session.DestinationPath()).
		Int64("declared", session.DeclaredTotalBytes).
		Bool("should_fail", session.ShouldFail).
		Msg("upload started")

	// client disconnects do not cancel the completion delay
	ctx := log.WithContext(context.WithoutCancel(r.Context()))

	outcome, err := h.uploads.Ingest(ctx, session, r.Body, service.NewLogProgressObserver(log))
	switch {
	case err == nil && outcome == models.OutcomeCompleted:
		if rawErr := respondCompleted(w); rawErr != nil {
			log.Warn().Err(rawErr).Msg("could not write raw 200 response")
		}
	case err == nil && outcome == models.OutcomeInjectedFailure:
		if rawErr := respondDenied(w); rawErr != nil {
			log.Warn().Err(rawErr).Msg("could not write raw 408 response")
		}
	case errors.Is(err, service.ErrStorage):
		respondStorageError(w, statusFromError(err))
	default:
		log.Warn().Err(err).Str("kind", outcome.String()).Msg("upload abandoned, aborting response")
		panic(http.ErrAbortHandler)
	}
}

// declaredLength prefers the length parsed by net/http and falls back to the
// raw header.
func declaredLength(r *http.Request) int64 {
	if r.ContentLength > 0 {
		return r.ContentLength
	}
	return models.ParseDeclaredLength(r.Header.Get(models.HeaderContentLength))
}
