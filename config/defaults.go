package config

import "time"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            9300,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			LogLevel:        "info",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "news",
			Name:     "news",
			SSLMode:  "disable",
			MaxConns: 10,
			MinConns: 2,
		},
		Redis: RedisConfig{
			URL:          "redis://localhost:6379/0",
			KeyPrefix:    "news:payload:",
			LocalEntries: 64,
		},
		HTTP: HTTPConfig{
			Timeout:      15 * time.Second,
			UserAgent:    "news-pipeline/1.0 (+https://example.com/bot)",
			HostInterval: time.Second,
		},
		Retry: RetryConfig{
			MaxRetries: 3,
			BaseDelay:  time.Second,
			MaxDelay:   15 * time.Second,
		},
		Breaker: BreakerConfig{
			FailureThreshold: 5,
			Cooldown:         10 * time.Minute,
		},
		CacheGate: CacheGateConfig{
			FreshWindow:       15 * time.Minute,
			RateLimitedWindow: time.Hour,
			TTL:               time.Hour,
		},
		Ingest: IngestConfig{
			Interval:         15 * time.Minute,
			Timeout:          10 * time.Minute,
			SourceDelay:      2 * time.Second,
			BatchSize:        25,
			BatchDelay:       500 * time.Millisecond,
			DefaultLanguages: []string{"en"},
			SchedulerEnabled: true,
		},
		Providers: ProvidersConfig{
			Headlines: HeadlinesConfig{
				Enabled:    true,
				BaseURL:    "https://newsapi.org/v2",
				Categories: []string{"technology", "business", "science", "health"},
				PageSize:   50,
			},
			CryptoCompare: CryptoCompareConfig{
				Enabled: true,
				BaseURL: "https://min-api.cryptocompare.com",
			},
			CryptoPanic: CryptoPanicConfig{
				Enabled: true,
				BaseURL: "https://cryptopanic.com/api/v1",
				Filter:  "rising",
				Kind:    "news",
				Regions: "en",
			},
			Crawler: CrawlerConfig{
				MaxItemsPerFeed: 20,
				EnrichContent:   true,
			},
			Extraction: ExtractionConfig{
				BaseURL: "https://api.firecrawl.dev/v1",
				Prompt:  "Extract every news article on the page with its title, full content, publication date, source name and URL.",
			},
		},
		Read: ReadConfig{
			RankWindow: 300,
		},
	}
}
