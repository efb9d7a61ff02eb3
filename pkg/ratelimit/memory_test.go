package ratelimit_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-contact-backend/pkg/ratelimit"
)

func TestMemoryLimiterWindow(t *testing.T) {
	limiter := ratelimit.NewMemory(ratelimit.Config{Limit: 5, Window: 50 * time.Millisecond})
	ctx := context.Background()

	t.Run("Should allow up to the limit and deny the next request", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			res, err := limiter.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, res.Allowed, "request %d should be allowed", i+1)
			assert.Equal(t, 4-i, res.Remaining)
		}

		res, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("Should not share counts across keys", func(t *testing.T) {
		res, err := limiter.Allow(ctx, "5.6.7.8")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("Should reset after the window elapses", func(t *testing.T) {
		time.Sleep(60 * time.Millisecond)
		res, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 4, res.Remaining)
	})
}

func TestMemoryLimiterConcurrency(t *testing.T) {
	const limit = 5
	const requests = 50

	limiter := ratelimit.NewMemory(ratelimit.Config{Limit: limit, Window: time.Minute})
	ctx := context.Background()

	var allowed int64
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := limiter.Allow(ctx, "same-key")
			if err == nil && res.Allowed {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	// Exactly the limit, never limit+1: the count update is atomic
	assert.Equal(t, int64(limit), allowed)
}
