package resilience

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"news-pipeline/domain"
	apperrors "news-pipeline/utils/errors"
)

// RetryConfig bounds retries of a single upstream call.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   15 * time.Second,
	}
}

// Backoff returns min(base * 2^retry, max).
func (c RetryConfig) Backoff(retry int) time.Duration {
	delay := c.BaseDelay
	for i := 0; i < retry; i++ {
		delay *= 2
		if delay >= c.MaxDelay {
			return c.MaxDelay
		}
	}
	if delay > c.MaxDelay {
		return c.MaxDelay
	}
	return delay
}

// Retrier runs upstream calls with the provider retry policy: 429 and other
// failures back off and retry, 401 and malformed payloads fail at once.
type Retrier struct {
	config RetryConfig
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewRetrier(config RetryConfig, logger *slog.Logger) *Retrier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Retrier{
		config: config,
		logger: logger,
		sleep:  sleepContext,
	}
}

// WithSleep replaces the delay function. Tests use it to avoid real waits.
func (r *Retrier) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *Retrier {
	r.sleep = sleep
	return r
}

// Do calls operation until it succeeds, fails permanently, or retries run out.
func (r *Retrier) Do(ctx context.Context, sourceID string, operation func(ctx context.Context) error) error {
	var lastErr error

	for retry := 0; ; retry++ {
		lastErr = operation(ctx)
		if lastErr == nil {
			if retry > 0 {
				r.logger.InfoContext(ctx, "upstream call succeeded after retry",
					"source_id", sourceID,
					"retries", retry)
			}
			return nil
		}

		if !IsRetryable(lastErr) {
			r.logger.WarnContext(ctx, "upstream call failed permanently",
				"source_id", sourceID,
				"error", lastErr,
				"error_kind", domain.KindOf(lastErr))
			return lastErr
		}

		if retry >= r.config.MaxRetries {
			break
		}

		delay := r.config.Backoff(retry)
		r.logger.WarnContext(ctx, "upstream call failed, retrying",
			"source_id", sourceID,
			"retry", retry+1,
			"max_retries", r.config.MaxRetries,
			"delay_ms", delay.Milliseconds(),
			"error", lastErr)

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	r.logger.ErrorContext(ctx, "upstream retries exhausted",
		"source_id", sourceID,
		"max_retries", r.config.MaxRetries,
		"error", lastErr)
	return lastErr
}

// IsRetryable classifies upstream errors for the retry policy. Transport
// failures reach here wrapped in *domain.UpstreamError; a bare context error
// means the caller gave up.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		if upstream.StatusCode != 0 {
			return apperrors.IsRetryableHTTPStatus(upstream.StatusCode)
		}
		return upstream.Kind != domain.ErrorKindAuth
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, domain.ErrMalformedPayload) || errors.Is(err, domain.ErrCircuitOpen) {
		return false
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
