package config

import "time"

// Config aggregates all service configuration blocks.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	HTTP      HTTPConfig      `json:"http"`
	Retry     RetryConfig     `json:"retry"`
	Breaker   BreakerConfig   `json:"breaker"`
	CacheGate CacheGateConfig `json:"cache_gate"`
	Ingest    IngestConfig    `json:"ingest"`
	Providers ProvidersConfig `json:"providers"`
	Read      ReadConfig      `json:"read"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	LogLevel        string        `json:"log_level" env:"LOG_LEVEL" default:"info"`
}

type DatabaseConfig struct {
	Host        string `json:"host" env:"DB_HOST" default:"localhost"`
	Port        int    `json:"port" env:"DB_PORT" default:"5432"`
	User        string `json:"user" env:"DB_USER" default:"news"`
	Password    string `json:"-" env:"DB_PASSWORD"`
	Name        string `json:"name" env:"DB_NAME" default:"news"`
	SSLMode     string `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConns    int    `json:"max_conns" env:"DB_MAX_CONNS" default:"10"`
	MinConns    int    `json:"min_conns" env:"DB_MIN_CONNS" default:"2"`
	DatabaseURL string `json:"-" env:"DATABASE_URL"`
}

type RedisConfig struct {
	URL          string `json:"url" env:"REDIS_URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string `json:"key_prefix" env:"REDIS_KEY_PREFIX" default:"news:payload:"`
	LocalEntries int    `json:"local_entries" env:"PAYLOAD_CACHE_LOCAL_ENTRIES" default:"64"`
}

type HTTPConfig struct {
	Timeout      time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"15s"`
	UserAgent    string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"news-pipeline/1.0 (+https://example.com/bot)"`
	HostInterval time.Duration `json:"host_interval" env:"HTTP_HOST_INTERVAL" default:"1s"`
}

type RetryConfig struct {
	MaxRetries int           `json:"max_retries" env:"RETRY_MAX_RETRIES" default:"3"`
	BaseDelay  time.Duration `json:"base_delay" env:"RETRY_BASE_DELAY" default:"1s"`
	MaxDelay   time.Duration `json:"max_delay" env:"RETRY_MAX_DELAY" default:"15s"`
}

type BreakerConfig struct {
	FailureThreshold int           `json:"failure_threshold" env:"BREAKER_FAILURE_THRESHOLD" default:"5"`
	Cooldown         time.Duration `json:"cooldown" env:"BREAKER_COOLDOWN" default:"10m"`
}

type CacheGateConfig struct {
	FreshWindow       time.Duration `json:"fresh_window" env:"CACHE_FRESH_WINDOW" default:"15m"`
	RateLimitedWindow time.Duration `json:"rate_limited_window" env:"CACHE_RATE_LIMITED_WINDOW" default:"1h"`
	TTL               time.Duration `json:"ttl" env:"CACHE_TTL" default:"1h"`
}

type IngestConfig struct {
	Interval         time.Duration `json:"interval" env:"INGEST_INTERVAL" default:"15m"`
	Timeout          time.Duration `json:"timeout" env:"INGEST_TIMEOUT" default:"10m"`
	SourceDelay      time.Duration `json:"source_delay" env:"INGEST_SOURCE_DELAY" default:"2s"`
	BatchSize        int           `json:"batch_size" env:"INGEST_BATCH_SIZE" default:"25"`
	BatchDelay       time.Duration `json:"batch_delay" env:"INGEST_BATCH_DELAY" default:"500ms"`
	DefaultLanguages []string      `json:"default_languages" env:"INGEST_LANGUAGES" default:"en"`
	SchedulerEnabled bool          `json:"scheduler_enabled" env:"INGEST_SCHEDULER_ENABLED" default:"true"`
}

type ProvidersConfig struct {
	Headlines     HeadlinesConfig     `json:"headlines"`
	CryptoCompare CryptoCompareConfig `json:"cryptocompare"`
	CryptoPanic   CryptoPanicConfig   `json:"cryptopanic"`
	Crawler       CrawlerConfig       `json:"crawler"`
	Extraction    ExtractionConfig    `json:"extraction"`
}

type HeadlinesConfig struct {
	Enabled    bool     `json:"enabled" env:"HEADLINES_ENABLED" default:"true"`
	BaseURL    string   `json:"base_url" env:"HEADLINES_BASE_URL" default:"https://newsapi.org/v2"`
	APIKey     string   `json:"-" env:"HEADLINES_API_KEY"`
	Categories []string `json:"categories" env:"HEADLINES_CATEGORIES" default:"technology,business,science,health"`
	PageSize   int      `json:"page_size" env:"HEADLINES_PAGE_SIZE" default:"50"`
}

type CryptoCompareConfig struct {
	Enabled bool   `json:"enabled" env:"CRYPTOCOMPARE_ENABLED" default:"true"`
	BaseURL string `json:"base_url" env:"CRYPTOCOMPARE_BASE_URL" default:"https://min-api.cryptocompare.com"`
	APIKey  string `json:"-" env:"CRYPTOCOMPARE_API_KEY"`
}

type CryptoPanicConfig struct {
	Enabled bool   `json:"enabled" env:"CRYPTOPANIC_ENABLED" default:"true"`
	BaseURL string `json:"base_url" env:"CRYPTOPANIC_BASE_URL" default:"https://cryptopanic.com/api/v1"`
	Token   string `json:"-" env:"CRYPTOPANIC_TOKEN"`
	Filter  string `json:"filter" env:"CRYPTOPANIC_FILTER" default:"rising"`
	Kind    string `json:"kind" env:"CRYPTOPANIC_KIND" default:"news"`
	Regions string `json:"regions" env:"CRYPTOPANIC_REGIONS" default:"en"`
}

type CrawlerConfig struct {
	Enabled         bool     `json:"enabled" env:"CRAWLER_ENABLED" default:"false"`
	FeedURLs        []string `json:"feed_urls" env:"CRAWLER_FEED_URLS"`
	MaxItemsPerFeed int      `json:"max_items_per_feed" env:"CRAWLER_MAX_ITEMS_PER_FEED" default:"20"`
	EnrichContent   bool     `json:"enrich_content" env:"CRAWLER_ENRICH_CONTENT" default:"true"`
}

type ExtractionConfig struct {
	Enabled    bool     `json:"enabled" env:"EXTRACTION_ENABLED" default:"false"`
	BaseURL    string   `json:"base_url" env:"EXTRACTION_BASE_URL" default:"https://api.firecrawl.dev/v1"`
	APIKey     string   `json:"-" env:"EXTRACTION_API_KEY"`
	TargetURLs []string `json:"target_urls" env:"EXTRACTION_TARGET_URLS"`
	Prompt     string   `json:"prompt" env:"EXTRACTION_PROMPT" default:"Extract every news article on the page with its title, full content, publication date, source name and URL."`
}

type ReadConfig struct {
	RankWindow int `json:"rank_window" env:"READ_RANK_WINDOW" default:"300"`
}
