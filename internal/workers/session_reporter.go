// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/dustin/go-humanize"
)

// SessionReporter periodically logs every upload in flight.
type SessionReporter struct {
	sessions SessionLister
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionReporter(sessions SessionLister, interval time.Duration, logger *logger.Logger) *SessionReporter {
	return &SessionReporter{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the reporting loop in its own goroutine.
func (r *SessionReporter) Run(ctx context.Context) {
	go r.loop(ctx)
}

func (r *SessionReporter) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Report()
		}
	}
}

// Report writes one line per active session, or nothing when idle.
func (r *SessionReporter) Report() {
	active := r.sessions.ActiveSessions()
	if len(active) == 0 {
		return
	}

	r.logger.Info().Int("active_sessions", len(active)).Msg("uploads in flight")
	for _, p := range active {
		r.logger.Info().
			Str("session_id", p.SessionID).
			Str("path", p.DestinationPath).
			Str("received", humanize.IBytes(uint64(p.ReceivedBytes))).
			Int64("total", p.TotalBytes).
			Int("percent", p.Percent).
			Str("state", p.State.String()).
			Msg("upload in flight")
	}
}
