package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadConfig builds the configuration from defaults, an optional .env file
// and environment overrides.
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	*config = *defaultConfig()

	loaders := []struct {
		name string
		fn   func() error
	}{
		{"server", func() error { return loadServerConfig(&config.Server) }},
		{"database", func() error { return loadDatabaseConfig(&config.Database) }},
		{"redis", func() error { return loadRedisConfig(&config.Redis) }},
		{"HTTP", func() error { return loadHTTPConfig(&config.HTTP) }},
		{"retry", func() error { return loadRetryConfig(&config.Retry) }},
		{"breaker", func() error { return loadBreakerConfig(&config.Breaker) }},
		{"cache gate", func() error { return loadCacheGateConfig(&config.CacheGate) }},
		{"ingest", func() error { return loadIngestConfig(&config.Ingest) }},
		{"providers", func() error { return loadProvidersConfig(&config.Providers) }},
		{"read", func() error { return loadReadConfig(&config.Read) }},
	}

	for _, l := range loaders {
		if err := l.fn(); err != nil {
			return fmt.Errorf("failed to load %s config: %w", l.name, err)
		}
	}

	return nil
}

func loadServerConfig(cfg *ServerConfig) error {
	var err error

	if cfg.Port, err = parseIntEnv("SERVER_PORT", cfg.Port); err != nil {
		return err
	}
	if cfg.ShutdownTimeout, err = parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}
	if cfg.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}
	if cfg.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}
	cfg.LogLevel = parseStringEnv("LOG_LEVEL", cfg.LogLevel)

	return nil
}

func loadDatabaseConfig(cfg *DatabaseConfig) error {
	var err error

	cfg.Host = parseStringEnv("DB_HOST", cfg.Host)
	if cfg.Port, err = parseIntEnv("DB_PORT", cfg.Port); err != nil {
		return err
	}
	cfg.User = parseStringEnv("DB_USER", cfg.User)
	cfg.Password = parseStringEnv("DB_PASSWORD", cfg.Password)
	cfg.Name = parseStringEnv("DB_NAME", cfg.Name)
	cfg.SSLMode = parseStringEnv("DB_SSL_MODE", cfg.SSLMode)
	if cfg.MaxConns, err = parseIntEnv("DB_MAX_CONNS", cfg.MaxConns); err != nil {
		return err
	}
	if cfg.MinConns, err = parseIntEnv("DB_MIN_CONNS", cfg.MinConns); err != nil {
		return err
	}
	cfg.DatabaseURL = parseStringEnv("DATABASE_URL", cfg.DatabaseURL)

	return nil
}

func loadRedisConfig(cfg *RedisConfig) error {
	var err error

	cfg.URL = parseStringEnv("REDIS_URL", cfg.URL)
	cfg.KeyPrefix = parseStringEnv("REDIS_KEY_PREFIX", cfg.KeyPrefix)
	if cfg.LocalEntries, err = parseIntEnv("PAYLOAD_CACHE_LOCAL_ENTRIES", cfg.LocalEntries); err != nil {
		return err
	}

	return nil
}

func loadHTTPConfig(cfg *HTTPConfig) error {
	var err error

	if cfg.Timeout, err = parseDurationEnv("HTTP_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}
	cfg.UserAgent = parseStringEnv("HTTP_USER_AGENT", cfg.UserAgent)
	if cfg.HostInterval, err = parseDurationEnv("HTTP_HOST_INTERVAL", cfg.HostInterval); err != nil {
		return err
	}

	return nil
}

func loadRetryConfig(cfg *RetryConfig) error {
	var err error

	if cfg.MaxRetries, err = parseIntEnv("RETRY_MAX_RETRIES", cfg.MaxRetries); err != nil {
		return err
	}
	if cfg.BaseDelay, err = parseDurationEnv("RETRY_BASE_DELAY", cfg.BaseDelay); err != nil {
		return err
	}
	if cfg.MaxDelay, err = parseDurationEnv("RETRY_MAX_DELAY", cfg.MaxDelay); err != nil {
		return err
	}

	return nil
}

func loadBreakerConfig(cfg *BreakerConfig) error {
	var err error

	if cfg.FailureThreshold, err = parseIntEnv("BREAKER_FAILURE_THRESHOLD", cfg.FailureThreshold); err != nil {
		return err
	}
	if cfg.Cooldown, err = parseDurationEnv("BREAKER_COOLDOWN", cfg.Cooldown); err != nil {
		return err
	}

	return nil
}

func loadCacheGateConfig(cfg *CacheGateConfig) error {
	var err error

	if cfg.FreshWindow, err = parseDurationEnv("CACHE_FRESH_WINDOW", cfg.FreshWindow); err != nil {
		return err
	}
	if cfg.RateLimitedWindow, err = parseDurationEnv("CACHE_RATE_LIMITED_WINDOW", cfg.RateLimitedWindow); err != nil {
		return err
	}
	if cfg.TTL, err = parseDurationEnv("CACHE_TTL", cfg.TTL); err != nil {
		return err
	}

	return nil
}

func loadIngestConfig(cfg *IngestConfig) error {
	var err error

	if cfg.Interval, err = parseDurationEnv("INGEST_INTERVAL", cfg.Interval); err != nil {
		return err
	}
	if cfg.Timeout, err = parseDurationEnv("INGEST_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}
	if cfg.SourceDelay, err = parseDurationEnv("INGEST_SOURCE_DELAY", cfg.SourceDelay); err != nil {
		return err
	}
	if cfg.BatchSize, err = parseIntEnv("INGEST_BATCH_SIZE", cfg.BatchSize); err != nil {
		return err
	}
	if cfg.BatchDelay, err = parseDurationEnv("INGEST_BATCH_DELAY", cfg.BatchDelay); err != nil {
		return err
	}
	cfg.DefaultLanguages = parseListEnv("INGEST_LANGUAGES", cfg.DefaultLanguages)
	if cfg.SchedulerEnabled, err = parseBoolEnv("INGEST_SCHEDULER_ENABLED", cfg.SchedulerEnabled); err != nil {
		return err
	}

	return nil
}

func loadProvidersConfig(cfg *ProvidersConfig) error {
	var err error

	h := &cfg.Headlines
	if h.Enabled, err = parseBoolEnv("HEADLINES_ENABLED", h.Enabled); err != nil {
		return err
	}
	h.BaseURL = parseStringEnv("HEADLINES_BASE_URL", h.BaseURL)
	h.APIKey = parseStringEnv("HEADLINES_API_KEY", h.APIKey)
	h.Categories = parseListEnv("HEADLINES_CATEGORIES", h.Categories)
	if h.PageSize, err = parseIntEnv("HEADLINES_PAGE_SIZE", h.PageSize); err != nil {
		return err
	}

	cc := &cfg.CryptoCompare
	if cc.Enabled, err = parseBoolEnv("CRYPTOCOMPARE_ENABLED", cc.Enabled); err != nil {
		return err
	}
	cc.BaseURL = parseStringEnv("CRYPTOCOMPARE_BASE_URL", cc.BaseURL)
	cc.APIKey = parseStringEnv("CRYPTOCOMPARE_API_KEY", cc.APIKey)

	cp := &cfg.CryptoPanic
	if cp.Enabled, err = parseBoolEnv("CRYPTOPANIC_ENABLED", cp.Enabled); err != nil {
		return err
	}
	cp.BaseURL = parseStringEnv("CRYPTOPANIC_BASE_URL", cp.BaseURL)
	cp.Token = parseStringEnv("CRYPTOPANIC_TOKEN", cp.Token)
	cp.Filter = parseStringEnv("CRYPTOPANIC_FILTER", cp.Filter)
	cp.Kind = parseStringEnv("CRYPTOPANIC_KIND", cp.Kind)
	cp.Regions = parseStringEnv("CRYPTOPANIC_REGIONS", cp.Regions)

	cr := &cfg.Crawler
	if cr.Enabled, err = parseBoolEnv("CRAWLER_ENABLED", cr.Enabled); err != nil {
		return err
	}
	cr.FeedURLs = parseListEnv("CRAWLER_FEED_URLS", cr.FeedURLs)
	if cr.MaxItemsPerFeed, err = parseIntEnv("CRAWLER_MAX_ITEMS_PER_FEED", cr.MaxItemsPerFeed); err != nil {
		return err
	}
	if cr.EnrichContent, err = parseBoolEnv("CRAWLER_ENRICH_CONTENT", cr.EnrichContent); err != nil {
		return err
	}

	ex := &cfg.Extraction
	if ex.Enabled, err = parseBoolEnv("EXTRACTION_ENABLED", ex.Enabled); err != nil {
		return err
	}
	ex.BaseURL = parseStringEnv("EXTRACTION_BASE_URL", ex.BaseURL)
	ex.APIKey = parseStringEnv("EXTRACTION_API_KEY", ex.APIKey)
	ex.TargetURLs = parseListEnv("EXTRACTION_TARGET_URLS", ex.TargetURLs)
	ex.Prompt = parseStringEnv("EXTRACTION_PROMPT", ex.Prompt)

	return nil
}

func loadReadConfig(cfg *ReadConfig) error {
	var err error

	if cfg.RankWindow, err = parseIntEnv("READ_RANK_WINDOW", cfg.RankWindow); err != nil {
		return err
	}

	return nil
}

// ConnectionString returns DATABASE_URL when set, otherwise a DSN built from parts.
func (c DatabaseConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	q.Set("pool_max_conns", strconv.Itoa(c.MaxConns))
	q.Set("pool_min_conns", strconv.Itoa(c.MinConns))
	u.RawQuery = q.Encode()
	return u.String()
}

func parseStringEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return d, nil
	}
	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return i, nil
	}
	return defaultValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return b, nil
	}
	return defaultValue, nil
}
