package resilience

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
)

func newTestRetrier() (*Retrier, *[]time.Duration) {
	var waits []time.Duration
	r := NewRetrier(DefaultRetryConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.WithSleep(func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	})
	return r, &waits
}

func TestRetryConfig_Backoff(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: 2 * time.Second, MaxDelay: 15 * time.Second}

	assert.Equal(t, 2*time.Second, cfg.Backoff(0))
	assert.Equal(t, 4*time.Second, cfg.Backoff(1))
	assert.Equal(t, 8*time.Second, cfg.Backoff(2))
	assert.Equal(t, 15*time.Second, cfg.Backoff(3))
	assert.Equal(t, 15*time.Second, cfg.Backoff(30))
}

func TestRetrier_Do(t *testing.T) {
	tests := map[string]struct {
		errs      []error
		wantCalls int
		wantWaits []time.Duration
		wantErr   error
	}{
		"succeeds first time": {
			errs:      []error{nil},
			wantCalls: 1,
		},
		"429 retried until success": {
			errs:      []error{domain.NewUpstreamStatusError("s", 429), domain.NewUpstreamStatusError("s", 429), nil},
			wantCalls: 3,
			wantWaits: []time.Duration{time.Second, 2 * time.Second},
		},
		"429 exhausts three retries": {
			errs: []error{
				domain.NewUpstreamStatusError("s", 429),
				domain.NewUpstreamStatusError("s", 429),
				domain.NewUpstreamStatusError("s", 429),
				domain.NewUpstreamStatusError("s", 429),
			},
			wantCalls: 4,
			wantWaits: []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
			wantErr:   domain.ErrUpstreamRateLimited,
		},
		"401 fails immediately": {
			errs:      []error{domain.NewUpstreamStatusError("s", 401)},
			wantCalls: 1,
			wantErr:   domain.ErrUpstreamAuth,
		},
		"403 retried like other non-2xx": {
			errs:      []error{domain.NewUpstreamStatusError("s", 403), nil},
			wantCalls: 2,
			wantWaits: []time.Duration{time.Second},
		},
		"5xx retried": {
			errs:      []error{domain.NewUpstreamStatusError("s", 503), nil},
			wantCalls: 2,
			wantWaits: []time.Duration{time.Second},
		},
		"malformed payload not retried": {
			errs:      []error{&domain.MalformedPayloadError{SourceID: "s", Reason: "missing articles"}},
			wantCalls: 1,
			wantErr:   domain.ErrMalformedPayload,
		},
		"network error retried": {
			errs:      []error{&domain.UpstreamError{SourceID: "s", Kind: domain.ErrorKindTransient, Cause: errors.New("connection reset")}, nil},
			wantCalls: 2,
			wantWaits: []time.Duration{time.Second},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r, waits := newTestRetrier()
			calls := 0

			err := r.Do(context.Background(), "s", func(ctx context.Context) error {
				e := tc.errs[calls]
				calls++
				return e
			})

			assert.Equal(t, tc.wantCalls, calls)
			assert.Equal(t, tc.wantWaits, *waits)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestRetrier_StopsOnCancelledContext(t *testing.T) {
	r, _ := newTestRetrier()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := r.Do(ctx, "s", func(ctx context.Context) error {
		calls++
		return domain.NewUpstreamStatusError("s", 500)
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))
}
