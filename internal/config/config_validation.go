// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.ReadHeaderTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Files.UploadsDir == "" {
		return fmt.Errorf("%w: empty uploads directory", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.FileMode.Perm()&0o200 == 0 {
		return fmt.Errorf("%w: file mode %s is not writable by owner", ErrInvalidStorageConfigs, cfg.Storage.Files.FileMode)
	}

	if cfg.Upload.FailThreshold < 0 || cfg.Upload.FailThreshold >= 1 {
		return fmt.Errorf("%w: fail threshold %v outside [0, 1)", ErrInvalidUploadConfigs, cfg.Upload.FailThreshold)
	}
	if cfg.Upload.ChunkSize < 0 {
		return fmt.Errorf("%w: negative chunk size", ErrInvalidUploadConfigs)
	}

	return nil
}

// Settings for which zero would be a meaningful value. Zero marks a field as
// unset while layers merge, so a source that sets one of these to zero is
// rejected instead of silently falling back to the default.
const (
	settingRateLimit     = "rate limit"
	settingFailThreshold = "fail threshold"
)

func explicitZeroError(setting string) error {
	switch setting {
	case settingRateLimit:
		return fmt.Errorf("%w: %s must not be 0, use a negative value to disable pacing", ErrInvalidUploadConfigs, setting)
	default:
		return fmt.Errorf("%w: %s must not be 0", ErrInvalidUploadConfigs, setting)
	}
}
