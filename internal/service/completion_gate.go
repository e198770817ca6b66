// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

// CompletionGate defers the success response of fully received uploads by
// a fixed delay, simulating a slow finalize step. Waiting parks only the
// calling goroutine on a timer.
type CompletionGate struct {
	delay time.Duration

	done chan struct{}
	once sync.Once
}

// NewCompletionGate returns a gate holding sessions for delay. A
// non-positive delay lets sessions through immediately.
func NewCompletionGate(delay time.Duration) *CompletionGate {
	return &CompletionGate{
		delay: delay,
		done:  make(chan struct{}),
	}
}

// Delay returns the configured delay.
func (g *CompletionGate) Delay() time.Duration {
	return g.delay
}

// Wait blocks until the delay elapsed. It returns [ErrGateClosed] if the
// gate was closed before or during the wait, or ctx.Err() if ctx is done
// first. Callers pass a context that is not canceled by the client.
func (g *CompletionGate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return ErrGateClosed
	default:
	}

	if g.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-g.done:
		return ErrGateClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases every current and future waiter with [ErrGateClosed].
// It is safe to call more than once.
func (g *CompletionGate) Close() {
	g.once.Do(func() {
		close(g.done)
	})
}
