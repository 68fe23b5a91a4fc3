package resilience

import (
	"sync"
	"time"

	"news-pipeline/domain"
)

// RateGuardConfig holds the breaker thresholds shared by every source.
type RateGuardConfig struct {
	FailureThreshold int           `json:"failure_threshold"`
	Cooldown         time.Duration `json:"cooldown"`
}

// DefaultRateGuardConfig returns default configuration
func DefaultRateGuardConfig() RateGuardConfig {
	return RateGuardConfig{
		FailureThreshold: 5,
		Cooldown:         10 * time.Minute,
	}
}

type sourceBreaker struct {
	failures         int
	trippedAt        time.Time
	rateLimitedUntil time.Time
}

// RateGuard is a source-keyed circuit breaker. It never performs I/O, so
// callers take a decision, release, call upstream, and record the outcome.
type RateGuard struct {
	config RateGuardConfig
	now    func() time.Time

	mu      sync.Mutex
	sources map[string]*sourceBreaker
}

// NewRateGuard creates a guard. A nil clock means time.Now.
func NewRateGuard(config RateGuardConfig, now func() time.Time) *RateGuard {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = DefaultRateGuardConfig().FailureThreshold
	}
	if config.Cooldown <= 0 {
		config.Cooldown = DefaultRateGuardConfig().Cooldown
	}
	if now == nil {
		now = time.Now
	}
	return &RateGuard{
		config:  config,
		now:     now,
		sources: make(map[string]*sourceBreaker),
	}
}

// must be called with mu held
func (g *RateGuard) state(sourceID string) *sourceBreaker {
	s, ok := g.sources[sourceID]
	if !ok {
		s = &sourceBreaker{}
		g.sources[sourceID] = s
	}
	return s
}

// Attempt returns nil when a call to sourceID may proceed and a
// *domain.CircuitOpenError while the breaker is open. Once the cooldown has
// elapsed the breaker resets and the call is allowed.
func (g *RateGuard) Attempt(sourceID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state(sourceID)
	if s.failures < g.config.FailureThreshold || s.trippedAt.IsZero() {
		return nil
	}

	elapsed := g.now().Sub(s.trippedAt)
	if elapsed < g.config.Cooldown {
		return &domain.CircuitOpenError{
			SourceID:   sourceID,
			RetryAfter: g.config.Cooldown - elapsed,
		}
	}

	s.failures = 0
	s.trippedAt = time.Time{}
	return nil
}

// RecordSuccess closes the breaker for sourceID.
func (g *RateGuard) RecordSuccess(sourceID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state(sourceID)
	s.failures = 0
	s.trippedAt = time.Time{}
}

// RecordFailure counts a failed call; reaching the threshold trips the breaker.
func (g *RateGuard) RecordFailure(sourceID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state(sourceID)
	s.failures++
	if s.failures >= g.config.FailureThreshold && s.trippedAt.IsZero() {
		s.trippedAt = g.now()
	}
}

// RecordRateLimited marks sourceID as throttled upstream for one cooldown.
func (g *RateGuard) RecordRateLimited(sourceID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state(sourceID).rateLimitedUntil = g.now().Add(g.config.Cooldown)
}

// IsRateLimited is true while the breaker is open or the source recently
// answered with 429 after retries were exhausted.
func (g *RateGuard) IsRateLimited(sourceID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sources[sourceID]
	if !ok {
		return false
	}
	now := g.now()
	if !s.trippedAt.IsZero() && now.Sub(s.trippedAt) < g.config.Cooldown {
		return true
	}
	return now.Before(s.rateLimitedUntil)
}

// Snapshot returns a copy of the breaker state for sourceID.
func (g *RateGuard) Snapshot(sourceID string) domain.BreakerState {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := domain.BreakerState{SourceID: sourceID}
	s, ok := g.sources[sourceID]
	if !ok {
		return out
	}
	out.ConsecutiveFailures = s.failures
	if !s.trippedAt.IsZero() {
		t := s.trippedAt
		out.TrippedAt = &t
	}
	if g.now().Before(s.rateLimitedUntil) {
		t := s.rateLimitedUntil
		out.RateLimitedUntil = &t
	}
	return out
}
