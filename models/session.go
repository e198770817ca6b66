// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sync/atomic"
	"time"
)

// SessionState is the lifecycle state of a single [UploadSession].
//
// The only legal transitions are Receiving → Failed and
// Receiving → Completed. Both Failed and Completed are terminal.
type SessionState int32

const (
	// SessionReceiving is the initial state, entered when request headers
	// have been parsed and the body is being consumed.
	SessionReceiving SessionState = iota
	// SessionFailed is entered when the upload is aborted, either by the
	// failure injector or by a storage error.
	SessionFailed
	// SessionCompleted is entered when the whole body was received and the
	// completion delay has elapsed.
	SessionCompleted
)

// String returns a lowercase name of the state suitable for log fields.
func (s SessionState) String() string {
	switch s {
	case SessionReceiving:
		return "receiving"
	case SessionFailed:
		return "failed"
	case SessionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnknownLength marks a declared total that is absent, zero, negative or
// could not be parsed.
const UnknownLength int64 = -1

// UploadSessionParams carries the values an [UploadSession] is created from.
type UploadSessionParams struct {
	ID                 string
	FileName           string
	DeclaredTotalBytes int64
	ShouldFail         bool
	DestinationPath    string
	CreatedAt          time.Time
}

// UploadSession is the server-side state of one in-flight upload request.
//
// The received counter and the state are atomics so that diagnostics may
// read a session from other goroutines while the dispatcher owning it keeps
// updating it. Only the dispatcher mutates a session.
type UploadSession struct {
	// ID identifies the session in logs and progress reports.
	ID string
	// FileName is the sanitized file name component taken from the
	// `file-name` header (or a generated placeholder).
	FileName string
	// DeclaredTotalBytes is the size the client announced, or
	// [UnknownLength].
	DeclaredTotalBytes int64
	// ShouldFail enables failure injection for this session.
	ShouldFail bool
	// CreatedAt is the moment the headers were parsed.
	CreatedAt time.Time

	destinationPath string
	received        atomic.Int64
	state           atomic.Int32
}

// NewUploadSession returns a session in the [SessionReceiving] state with
// zero bytes received. Non-positive declared totals are normalized to
// [UnknownLength].
func NewUploadSession(p UploadSessionParams) *UploadSession {
	total := p.DeclaredTotalBytes
	if total <= 0 {
		total = UnknownLength
	}

	return &UploadSession{
		ID:                 p.ID,
		FileName:           p.FileName,
		DeclaredTotalBytes: total,
		ShouldFail:         p.ShouldFail,
		CreatedAt:          p.CreatedAt,
		destinationPath:    p.DestinationPath,
	}
}

// DestinationPath returns the file path assigned at creation.
func (s *UploadSession) DestinationPath() string {
	return s.destinationPath
}

// AddReceived adds n bytes to the received counter and returns the new
// total. Non-positive n leaves the counter untouched.
func (s *UploadSession) AddReceived(n int) int64 {
	if n <= 0 {
		return s.received.Load()
	}
	return s.received.Add(int64(n))
}

// ReceivedBytes returns the number of body bytes read so far.
func (s *UploadSession) ReceivedBytes() int64 {
	return s.received.Load()
}

// HasKnownTotal reports whether the declared total can be used for
// progress math.
func (s *UploadSession) HasKnownTotal() bool {
	return s.DeclaredTotalBytes > 0
}

// ProgressRatio returns received/declared. ok is false when the declared
// total is unknown, in which case the ratio is meaningless.
func (s *UploadSession) ProgressRatio() (ratio float64, ok bool) {
	if !s.HasKnownTotal() {
		return 0, false
	}
	return float64(s.ReceivedBytes()) / float64(s.DeclaredTotalBytes), true
}

// Percent returns floor(100 * ratio), or 0 for an unknown total.
func (s *UploadSession) Percent() int {
	ratio, ok := s.ProgressRatio()
	if !ok {
		return 0
	}
	return int(100 * ratio)
}

// State returns the current lifecycle state.
func (s *UploadSession) State() SessionState {
	return SessionState(s.state.Load())
}

// IsTerminal reports whether the session is Failed or Completed.
func (s *UploadSession) IsTerminal() bool {
	return s.State() != SessionReceiving
}

// MarkFailed moves the session from Receiving to Failed. It returns false
// if the session already reached a terminal state.
func (s *UploadSession) MarkFailed() bool {
	return s.state.CompareAndSwap(int32(SessionReceiving), int32(SessionFailed))
}

// MarkCompleted moves the session from Receiving to Completed. It returns
// false if the session already reached a terminal state.
func (s *UploadSession) MarkCompleted() bool {
	return s.state.CompareAndSwap(int32(SessionReceiving), int32(SessionCompleted))
}

// Snapshot returns an immutable copy of the session progress.
func (s *UploadSession) Snapshot() UploadProgress {
	return UploadProgress{
		SessionID:       s.ID,
		FileName:        s.FileName,
		DestinationPath: s.destinationPath,
		ReceivedBytes:   s.ReceivedBytes(),
		TotalBytes:      s.DeclaredTotalBytes,
		Percent:         s.Percent(),
		State:           s.State(),
	}
}
