package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrTransport wraps body read failures (peer reset, premature close).
	// The session is abandoned without a formal response.
	ErrTransport = errors.New("upload transport error")

	// ErrStorage wraps failures to create, write or close the destination
	// file. It is kept apart from injected failures in telemetry.
	ErrStorage = errors.New("upload storage error")

	// ErrShuttingDown is returned for sessions released from the completion
	// gate by process shutdown.
	ErrShuttingDown = errors.New("upload aborted by shutdown")

	// ErrGateClosed is returned by [CompletionGate.Wait] after Close.
	ErrGateClosed = errors.New("completion gate closed")

	// ErrSessionAlreadyRegistered is returned when a session ID is added to
	// the registry twice.
	ErrSessionAlreadyRegistered = errors.New("session already registered")
)
