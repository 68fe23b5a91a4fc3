package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRateLimiter_SpacesSameHost(t *testing.T) {
	limiter := NewHostRateLimiter(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://newsapi.org/v2/top-headlines"))
	require.NoError(t, limiter.WaitForHost(ctx, "https://newsapi.org/v2/everything"))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestHostRateLimiter_IndependentHosts(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour)
	ctx := context.Background()

	require.NoError(t, limiter.WaitForHost(ctx, "https://a.example.com/x"))
	require.NoError(t, limiter.WaitForHost(ctx, "https://b.example.com/x"))
}

func TestHostRateLimiter_InvalidURL(t *testing.T) {
	limiter := NewHostRateLimiter(time.Second)
	assert.Error(t, limiter.WaitForHost(context.Background(), "/relative/path"))
}

func TestPacer(t *testing.T) {
	t.Run("zero interval never blocks", func(t *testing.T) {
		p := NewPacer(0)
		for i := 0; i < 100; i++ {
			require.NoError(t, p.Wait(context.Background()))
		}
	})

	t.Run("respects cancellation", func(t *testing.T) {
		p := NewPacer(time.Hour)
		require.NoError(t, p.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, p.Wait(ctx))
	})
}
