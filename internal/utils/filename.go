// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"path"
	"strings"
	"unicode"
)

// SanitizeFileName reduces a client supplied file name to a single safe
// path component. Directory parts (both '/' and '\' separators) and
// control characters are removed. An empty string is returned when nothing
// usable is left, e.g. for "", ".", ".." or "../".
//
//	SanitizeFileName("../../etc/passwd") // "passwd"
//	SanitizeFileName(`C:\tmp\a.txt`)      // "a.txt"
func SanitizeFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	base := strings.TrimSpace(path.Base(name))
	switch base {
	case "", ".", "..", "/":
		return ""
	}

	return base
}
