// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package throttle paces byte streams to a fixed bytes-per-second ceiling.
//
// A throttled [Writer] forwards every byte to its downstream writer
// synchronously and blocks the caller while the token bucket refills, so a
// slow reader-side producer is suspended instead of being buffered. Each
// Writer owns its own limiter: wrapping one writer per upload session keeps
// the budgets independent.
package throttle

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// burstDivisor sets the bucket size to a tenth of a second worth of bytes,
// which bounds how far a writer may run ahead of the configured rate.
const burstDivisor = 10

// Writer is an [io.Writer] whose throughput never exceeds the rate of its
// limiter.
type Writer struct {
	ctx     context.Context
	w       io.Writer
	limiter *rate.Limiter
}

// NewWriter wraps w so that writes are paced to bytesPerSecond. Waiting is
// aborted when ctx is done. A non-positive rate disables pacing and w is
// returned unchanged.
func NewWriter(ctx context.Context, w io.Writer, bytesPerSecond int) io.Writer {
	if bytesPerSecond <= 0 {
		return w
	}

	return &Writer{
		ctx:     ctx,
		w:       w,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), burstFor(bytesPerSecond)),
	}
}

func burstFor(bytesPerSecond int) int {
	burst := bytesPerSecond / burstDivisor
	if burst < 1 {
		burst = 1
	}
	return burst
}

// Write waits for tokens in burst-sized steps and writes each step to the
// downstream writer before asking for the next one. It returns the number
// of bytes accepted downstream; a short count always comes with an error.
func (t *Writer) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		step := len(p) - written
		if burst := t.limiter.Burst(); step > burst {
			step = burst
		}

		if err := t.limiter.WaitN(t.ctx, step); err != nil {
			return written, err
		}

		n, err := t.w.Write(p[written : written+step])
		written += n
		if err != nil {
			return written, err
		}
		if n < step {
			return written, io.ErrShortWrite
		}
	}

	return written, nil
}

// Limit returns the configured rate in bytes per second.
func (t *Writer) Limit() int {
	return int(t.limiter.Limit())
}
