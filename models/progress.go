// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadProgress is a point-in-time view of an [UploadSession], handed to
// progress observers and diagnostics.
type UploadProgress struct {
	SessionID       string       `json:"session_id"`
	FileName        string       `json:"file_name"`
	DestinationPath string       `json:"destination_path"`
	ReceivedBytes   int64        `json:"received_bytes"`
	TotalBytes      int64        `json:"total_bytes"`
	Percent         int          `json:"percent"`
	State           SessionState `json:"state"`
}

// UploadOutcome is the terminal result of ingesting one upload body.
type UploadOutcome int

const (
	// OutcomeNone means no terminal response applies: the session was
	// abandoned because of a transport error or process shutdown.
	OutcomeNone UploadOutcome = iota
	// OutcomeCompleted means the body was fully stored and the completion
	// delay has elapsed.
	OutcomeCompleted
	// OutcomeInjectedFailure means the failure injector aborted the upload.
	OutcomeInjectedFailure
	// OutcomeStorageFailure means the destination file could not be
	// created or written.
	OutcomeStorageFailure
)

// String returns the telemetry name of the outcome.
func (o UploadOutcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeInjectedFailure:
		return "injected_failure"
	case OutcomeStorageFailure:
		return "storage_error"
	default:
		return "abandoned"
	}
}
