// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the variables named by the env and envPrefix tags
// of [StructuredConfig], for example UPLOAD_RATE_LIMIT or
// STORAGE_FILES_FILE_MODE. Unset variables leave their fields zero so that
// later sources can fill them. UPLOAD_RATE_LIMIT=0 and
// UPLOAD_FAIL_THRESHOLD=0 are rejected.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing environment: %w", err)
	}

	if envSet("UPLOAD_RATE_LIMIT") && cfg.Upload.RateLimit == 0 {
		return explicitZeroError(settingRateLimit)
	}
	if envSet("UPLOAD_FAIL_THRESHOLD") && cfg.Upload.FailThreshold == 0 {
		return explicitZeroError(settingFailThreshold)
	}

	return nil
}

func envSet(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && v != ""
}
