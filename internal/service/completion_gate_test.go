package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionGate_WaitsForDelay(t *testing.T) {
	gate := NewCompletionGate(100 * time.Millisecond)

	start := time.Now()
	err := gate.Wait(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, gate.Delay())
}

func TestCompletionGate_ZeroDelayPassesImmediately(t *testing.T) {
	gate := NewCompletionGate(0)

	start := time.Now()
	require.NoError(t, gate.Wait(context.Background()))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestCompletionGate_CloseReleasesWaiters(t *testing.T) {
	gate := NewCompletionGate(time.Hour)

	const waiters = 5
	errs := make(chan error, waiters)
	var wg sync.WaitGroup
	for range waiters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- gate.Wait(context.Background())
		}()
	}

	time.Sleep(20 * time.Millisecond)
	gate.Close()
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.ErrorIs(t, err, ErrGateClosed)
	}
}

func TestCompletionGate_ClosedGateRejectsNewWaiters(t *testing.T) {
	gate := NewCompletionGate(0)
	gate.Close()
	gate.Close()

	assert.ErrorIs(t, gate.Wait(context.Background()), ErrGateClosed)
}

func TestCompletionGate_ContextCancel(t *testing.T) {
	gate := NewCompletionGate(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, gate.Wait(ctx), context.DeadlineExceeded)
}

func TestCompletionGate_DetachedContextIgnoresParentCancel(t *testing.T) {
	gate := NewCompletionGate(50 * time.Millisecond)
	parent, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, gate.Wait(context.WithoutCancel(parent)))
}
