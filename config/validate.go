package config

import (
	"fmt"
	"strings"
)

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %v", config.HTTP.Timeout)
	}

	if config.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry max retries cannot be negative: %d", config.Retry.MaxRetries)
	}

	if config.Retry.BaseDelay <= 0 || config.Retry.MaxDelay < config.Retry.BaseDelay {
		return fmt.Errorf("retry delays must satisfy 0 < base (%v) <= max (%v)", config.Retry.BaseDelay, config.Retry.MaxDelay)
	}

	if config.Breaker.FailureThreshold <= 0 {
		return fmt.Errorf("breaker failure threshold must be positive: %d", config.Breaker.FailureThreshold)
	}

	if config.Breaker.Cooldown <= 0 {
		return fmt.Errorf("breaker cooldown must be positive: %v", config.Breaker.Cooldown)
	}

	if config.CacheGate.FreshWindow <= 0 || config.CacheGate.RateLimitedWindow < config.CacheGate.FreshWindow {
		return fmt.Errorf("cache gate windows must satisfy 0 < fresh (%v) <= rate limited (%v)",
			config.CacheGate.FreshWindow, config.CacheGate.RateLimitedWindow)
	}

	if config.CacheGate.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive: %v", config.CacheGate.TTL)
	}

	if config.Ingest.BatchSize < 20 || config.Ingest.BatchSize > 50 {
		return fmt.Errorf("ingest batch size must be within 20..50: %d", config.Ingest.BatchSize)
	}

	if config.Ingest.Interval <= 0 || config.Ingest.Timeout <= 0 {
		return fmt.Errorf("ingest interval and timeout must be positive")
	}

	if config.Ingest.SourceDelay < 0 || config.Ingest.BatchDelay < 0 {
		return fmt.Errorf("ingest delays cannot be negative")
	}

	if len(config.Ingest.DefaultLanguages) == 0 {
		return fmt.Errorf("at least one default ingest language is required")
	}

	if config.Providers.Headlines.Enabled && len(config.Providers.Headlines.Categories) == 0 {
		return fmt.Errorf("headlines provider needs at least one category")
	}

	if config.Providers.Crawler.Enabled && len(config.Providers.Crawler.FeedURLs) == 0 {
		return fmt.Errorf("crawler enabled without CRAWLER_FEED_URLS")
	}

	if config.Providers.Extraction.Enabled && len(config.Providers.Extraction.TargetURLs) == 0 {
		return fmt.Errorf("extraction enabled without EXTRACTION_TARGET_URLS")
	}

	if !strings.HasPrefix(config.Redis.URL, "redis://") && !strings.HasPrefix(config.Redis.URL, "rediss://") {
		return fmt.Errorf("redis URL must use redis:// or rediss://: %q", config.Redis.URL)
	}

	if config.Read.RankWindow <= 0 {
		return fmt.Errorf("read rank window must be positive: %d", config.Read.RankWindow)
	}

	return nil
}
