// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// upload-sink server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the uploads directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// listener.
	Server Server `envPrefix:"SERVER_"`

	// Upload holds the per-session ingestion parameters: pacing rate,
	// completion delay and failure injection threshold.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Logged at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level written ("debug", "info", ...).
	// Per-chunk progress lines are written at debug level.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// Files holds the file-system storage settings for uploaded bodies.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for the uploads directory.
type Files struct {
	// UploadsDir is the directory receiving
	// upload-<epoch-millis>-<file-name> files. Created at startup.
	// Env: STORAGE_FILES_UPLOADS_DIR
	UploadsDir string `env:"UPLOADS_DIR"`

	// FileMode is the permission set of created upload files, written in
	// octal (e.g. "0644").
	// Env: STORAGE_FILES_FILE_MODE
	FileMode FileMode `env:"FILE_MODE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. ":8083" or "127.0.0.1:8083").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadHeaderTimeout bounds the time allowed to read request headers.
	// Bodies are not bounded: slow, paced uploads are the point.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Upload holds the ingestion parameters shared by every session.
type Upload struct {
	// RateLimit is the per-session write ceiling in bytes per second.
	// A negative value disables pacing; an explicit zero is rejected.
	// Env: UPLOAD_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// CompletionDelay is how long a fully received upload waits before the
	// success response is sent. A negative value disables the delay.
	// Env: UPLOAD_COMPLETION_DELAY
	CompletionDelay time.Duration `env:"COMPLETION_DELAY"`

	// FailThreshold is the received/declared ratio that, once strictly
	// exceeded, aborts sessions carrying the should-fail header. An explicit
	// zero is rejected.
	// Env: UPLOAD_FAIL_THRESHOLD
	FailThreshold float64 `env:"FAIL_THRESHOLD"`

	// ChunkSize is the read buffer size used to consume request bodies.
	// Env: UPLOAD_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReportInterval is how often in-flight sessions are logged.
	// Zero falls back to the default; a negative value disables reporting.
	// Env: WORKERS_REPORT_INTERVAL
	ReportInterval time.Duration `env:"REPORT_INTERVAL"`
}

// FileMode is an [os.FileMode] that parses from octal text, so it can be
// set from env vars, flags and JSON strings alike.
type FileMode os.FileMode

// UnmarshalText parses an octal permission string such as "0644" or "600".
func (m *FileMode) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return fmt.Errorf("invalid file mode %q: %w", text, err)
	}
	if v > 0o777 {
		return fmt.Errorf("invalid file mode %q: only permission bits are allowed", text)
	}
	*m = FileMode(v)
	return nil
}

// MarshalText renders the mode in octal.
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// String renders the mode as a four digit octal number.
func (m FileMode) String() string {
	return fmt.Sprintf("%#04o", uint32(m))
}

// Set implements flag.Value.
func (m *FileMode) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

// Perm returns the mode as an [os.FileMode].
func (m FileMode) Perm() os.FileMode {
	return os.FileMode(m).Perm()
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
