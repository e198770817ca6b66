// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to every field left zero by env, flags and JSON.
const (
	DefaultHTTPAddress       = ":8083"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 30 * time.Second

	DefaultUploadsDir = "tests/www/uploads"
	DefaultFileMode   = FileMode(0o644)

	DefaultRateLimit       = 512 * 1024
	DefaultCompletionDelay = 10 * time.Second
	DefaultFailThreshold   = 0.25
	DefaultChunkSize       = 32 * 1024

	DefaultReportInterval = 30 * time.Second

	DefaultVersion  = "dev"
	DefaultLogLevel = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			Files: Files{
				UploadsDir: DefaultUploadsDir,
				FileMode:   DefaultFileMode,
			},
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		Upload: Upload{
			RateLimit:       DefaultRateLimit,
			CompletionDelay: DefaultCompletionDelay,
			FailThreshold:   DefaultFailThreshold,
			ChunkSize:       DefaultChunkSize,
		},
		Workers: Workers{
			ReportInterval: DefaultReportInterval,
		},
	}
}
