package cache_gate_usecase

import (
	"context"
	"fmt"
	"time"

	"news-pipeline/domain"
	"news-pipeline/metrics"
	"news-pipeline/port/aggregation_state_port"
	"news-pipeline/port/payload_cache_port"
	"news-pipeline/utils/logger"
)

// Decision reasons, also used as metric labels.
const (
	ReasonRateLimited = "rate_limited"
	ReasonFresh       = "fresh"
	ReasonStale       = "stale"
	ReasonNeverRun    = "never_run"
	ReasonForced      = "forced"
	ReasonStateError  = "state_error"
)

type Config struct {
	FreshWindow       time.Duration
	RateLimitedWindow time.Duration
	TTL               time.Duration
}

func DefaultConfig() Config {
	return Config{
		FreshWindow:       15 * time.Minute,
		RateLimitedWindow: time.Hour,
		TTL:               time.Hour,
	}
}

// RateLimitChecker is satisfied by resilience.RateGuard.
type RateLimitChecker interface {
	IsRateLimited(sourceID string) bool
}

// Decision is the outcome of the gate for one source.
type Decision struct {
	UseCache bool
	Reason   string
	LastRun  time.Time
}

// Decide applies the gate rules in order: a rate-limited source inside the
// rate-limited window reuses the cache, then any source inside the fresh
// window does, otherwise the source is fetched fresh.
func Decide(cfg Config, lastRun time.Time, hasRun, rateLimited bool, now time.Time) Decision {
	if !hasRun {
		return Decision{Reason: ReasonNeverRun}
	}
	since := now.Sub(lastRun)
	if rateLimited && since < cfg.RateLimitedWindow {
		return Decision{UseCache: true, Reason: ReasonRateLimited, LastRun: lastRun}
	}
	if since < cfg.FreshWindow {
		return Decision{UseCache: true, Reason: ReasonFresh, LastRun: lastRun}
	}
	return Decision{Reason: ReasonStale, LastRun: lastRun}
}

type CacheGateUsecase struct {
	state  aggregation_state_port.AggregationStatePort
	cache  payload_cache_port.PayloadCachePort
	guard  RateLimitChecker
	config Config
	now    func() time.Time
}

func NewCacheGateUsecase(
	state aggregation_state_port.AggregationStatePort,
	cache payload_cache_port.PayloadCachePort,
	guard RateLimitChecker,
	config Config,
	now func() time.Time,
) *CacheGateUsecase {
	if now == nil {
		now = time.Now
	}
	return &CacheGateUsecase{state: state, cache: cache, guard: guard, config: config, now: now}
}

// Evaluate decides whether sourceID should be served from cache. State read
// failures fall back to a fresh fetch.
func (u *CacheGateUsecase) Evaluate(ctx context.Context, sourceID string, forceUpdate bool) Decision {
	if forceUpdate {
		metrics.RecordCacheDecision(sourceID, ReasonForced)
		return Decision{Reason: ReasonForced}
	}

	lastRun, hasRun, err := u.state.LastRunAt(ctx, sourceID)
	if err != nil {
		logger.Logger.WarnContext(ctx, "Could not read last run, fetching fresh", "source_id", sourceID, "error", err)
		metrics.RecordCacheDecision(sourceID, ReasonStateError)
		return Decision{Reason: ReasonStateError}
	}

	d := Decide(u.config, lastRun, hasRun, u.guard.IsRateLimited(sourceID), u.now())
	metrics.RecordCacheDecision(sourceID, d.Reason)
	return d
}

// ShouldUseCache is the boolean form of Evaluate without a forced update.
func (u *CacheGateUsecase) ShouldUseCache(ctx context.Context, sourceID string) bool {
	return u.Evaluate(ctx, sourceID, false).UseCache
}

// GetCached returns the cached payload. Cache errors are reported as a miss.
func (u *CacheGateUsecase) GetCached(ctx context.Context, sourceID string) (*domain.ProviderPayload, bool) {
	payload, ok, err := u.cache.GetPayload(ctx, sourceID)
	if err != nil {
		logger.Logger.WarnContext(ctx, "Payload cache unavailable", "source_id", sourceID, "error", err)
		return nil, false
	}
	return payload, ok
}

// StoreFresh caches a freshly fetched payload and records the run time.
// Both writes are attempted even if the first fails.
func (u *CacheGateUsecase) StoreFresh(ctx context.Context, payload *domain.ProviderPayload) error {
	var cacheErr error
	if err := u.cache.SetPayload(ctx, payload, u.config.TTL); err != nil {
		cacheErr = fmt.Errorf("cache payload: %w", err)
		logger.Logger.WarnContext(ctx, "Failed to cache payload", "source_id", payload.SourceID, "error", err)
	}
	if err := u.state.MarkRun(ctx, payload.SourceID, u.now()); err != nil {
		logger.Logger.WarnContext(ctx, "Failed to record last run", "source_id", payload.SourceID, "error", err)
		if cacheErr == nil {
			return fmt.Errorf("mark run: %w", err)
		}
	}
	return cacheErr
}
