// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application: chunked body iteration, file name
// sanitizing, collision-free timestamps and identifier generation.
package utils

import (
	"errors"
	"io"
	"iter"
)

// DefaultChunkSize is the read buffer size used when a caller passes a
// non-positive chunk size to [Chunks].
const DefaultChunkSize = 32 * 1024

// Chunks returns a lazy, finite sequence over the byte chunks read from r,
// in arrival order. Each element is either a non-empty chunk with a nil
// error or a nil chunk with the read error that ended the sequence.
// io.EOF ends the sequence without an error element.
//
// The yielded slice is reused by the next iteration; consumers that keep a
// chunk past the loop body must copy it. The sequence drains r, so ranging
// over it a second time yields whatever is left in r.
//
// Example:
//
//	for chunk, err := range utils.Chunks(r.Body, 0) {
//	    if err != nil {
//	        return err
//	    }
//	    process(chunk)
//	}
func Chunks(r io.Reader, size int) iter.Seq2[[]byte, error] {
	if size <= 0 {
		size = DefaultChunkSize
	}

	return func(yield func([]byte, error) bool) {
		buf := make([]byte, size)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if !yield(buf[:n], nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
		}
	}
}
