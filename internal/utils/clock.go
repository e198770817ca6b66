// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"
	"time"
)

// MonotonicClock hands out millisecond timestamps that strictly increase
// across calls, even when several calls land in the same wall-clock
// millisecond or the wall clock steps backwards.
//
// Upload destination paths embed the epoch-millis stamp of the session, so
// a strictly increasing stamp keeps paths disjoint for concurrent sessions
// with identical file names.
type MonotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewMonotonicClock returns a clock reading wall time from now. A nil now
// defaults to [time.Now].
func NewMonotonicClock(now func() time.Time) *MonotonicClock {
	if now == nil {
		now = time.Now
	}
	return &MonotonicClock{now: now}
}

// Now returns a time truncated to the millisecond whose epoch-millis value
// is greater than every value returned before.
func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms

	return time.UnixMilli(ms)
}
