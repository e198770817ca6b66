// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// Request headers recognized by the upload endpoint.
const (
	HeaderFileName      = "File-Name"
	HeaderShouldFail    = "Should-Fail"
	HeaderContentLength = "Content-Length"
)

// Terminal response bodies.
const (
	BodyUploadComplete = "Upload complete!"
	BodyDenied         = "Denied!"
	BodyStorageError   = "Storage error!"
)

// ParseDeclaredLength converts a raw content-length style header value into
// a byte count. Absent, malformed, zero and negative values all yield
// [UnknownLength].
func ParseDeclaredLength(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownLength
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return UnknownLength
	}

	return n
}

// ParseShouldFail reports whether the `should-fail` header enables failure
// injection. The header's presence with any non-blank value turns it on,
// "false" and "0" included.
func ParseShouldFail(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
