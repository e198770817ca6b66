// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// placeholderPrefix starts every generated file name.
const placeholderPrefix = "unnamed-"

// UUIDGenerator produces time-ordered identifiers for sessions and
// placeholder file names.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// FileName returns the sanitized form of name, or a generated placeholder
// when the client did not send a usable one.
func (g *UUIDGenerator) FileName(name string) string {
	if clean := SanitizeFileName(name); clean != "" {
		return clean
	}

	return placeholderPrefix + g.Generate()
}
