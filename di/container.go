package di

import (
	"time"

	"news-pipeline/config"
	"news-pipeline/driver/crawler_driver"
	"news-pipeline/driver/langdetect_driver"
	"news-pipeline/driver/news_db"
	"news-pipeline/driver/payload_cache"
	"news-pipeline/driver/provider_client"
	"news-pipeline/gateway/aggregation_log_gateway"
	"news-pipeline/gateway/aggregation_state_gateway"
	"news-pipeline/gateway/article_query_gateway"
	"news-pipeline/gateway/article_store_gateway"
	"news-pipeline/gateway/crawler_source_gateway"
	"news-pipeline/gateway/cryptocompare_source_gateway"
	"news-pipeline/gateway/cryptopanic_source_gateway"
	"news-pipeline/gateway/extraction_source_gateway"
	"news-pipeline/gateway/headlines_source_gateway"
	"news-pipeline/gateway/payload_cache_gateway"
	"news-pipeline/gateway/user_preference_gateway"
	"news-pipeline/port/source_adapter_port"
	"news-pipeline/usecase/base_score_usecase"
	"news-pipeline/usecase/cache_gate_usecase"
	"news-pipeline/usecase/classify_usecase"
	"news-pipeline/usecase/dedup_usecase"
	"news-pipeline/usecase/fetch_articles_usecase"
	"news-pipeline/usecase/ingest_articles_usecase"
	"news-pipeline/usecase/rank_articles_usecase"
	"news-pipeline/usecase/relevance_usecase"
	"news-pipeline/utils/logger"
	"news-pipeline/utils/resilience"
)

type ApplicationComponents struct {
	FetchArticlesUsecase  *fetch_articles_usecase.FetchArticlesUsecase
	RankArticlesUsecase   *rank_articles_usecase.RankArticlesUsecase
	IngestArticlesUsecase *ingest_articles_usecase.IngestArticlesUsecase
	AggregationLog        *aggregation_log_gateway.AggregationLogGateway
	RateGuard             *resilience.RateGuard
	NewsDBRepository      *news_db.NewsDBRepository
	PayloadCache          *payload_cache.PayloadCache
}

// NewApplicationComponents wires every layer. pool and cache are owned by
// the caller, which closes them on shutdown.
func NewApplicationComponents(cfg *config.Config, pool news_db.PgxIface, cache *payload_cache.PayloadCache) *ApplicationComponents {
	newsDB := news_db.NewNewsDBRepository(pool)

	articleStore := article_store_gateway.NewArticleStoreGateway(newsDB)
	articleQuery := article_query_gateway.NewArticleQueryGateway(newsDB)
	preferences := user_preference_gateway.NewUserPreferenceGateway(newsDB)
	runLog := aggregation_log_gateway.NewAggregationLogGateway(newsDB)
	runState := aggregation_state_gateway.NewAggregationStateGateway(newsDB)
	payloadCache := payload_cache_gateway.NewPayloadCacheGateway(cache)

	rateGuard := resilience.NewRateGuard(resilience.RateGuardConfig{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		Cooldown:         cfg.Breaker.Cooldown,
	}, time.Now)
	retrier := resilience.NewRetrier(resilience.RetryConfig{
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  cfg.Retry.BaseDelay,
		MaxDelay:   cfg.Retry.MaxDelay,
	}, logger.Logger)
	client := provider_client.NewClient(provider_client.Config{
		Timeout:      cfg.HTTP.Timeout,
		UserAgent:    cfg.HTTP.UserAgent,
		HostInterval: cfg.HTTP.HostInterval,
	}, retrier)

	cacheGate := cache_gate_usecase.NewCacheGateUsecase(runState, payloadCache, rateGuard, cache_gate_usecase.Config{
		FreshWindow:       cfg.CacheGate.FreshWindow,
		RateLimitedWindow: cfg.CacheGate.RateLimitedWindow,
		TTL:               cfg.CacheGate.TTL,
	}, time.Now)

	ingest := ingest_articles_usecase.NewIngestArticlesUsecase(ingest_articles_usecase.Deps{
		Sources:    buildSources(cfg, client),
		Gate:       cacheGate,
		Guard:      rateGuard,
		Classifier: classify_usecase.NewClassifyUsecase(),
		Scorer:     base_score_usecase.NewBaseScoreUsecase(time.Now),
		Dedup:      dedup_usecase.NewDedupUsecase(articleStore),
		Store:      articleStore,
		RunLog:     runLog,
		Detector:   langdetect_driver.NewDetector(),
	}, ingest_articles_usecase.Config{
		SourceDelay:      cfg.Ingest.SourceDelay,
		BatchSize:        cfg.Ingest.BatchSize,
		BatchDelay:       cfg.Ingest.BatchDelay,
		DefaultLanguages: cfg.Ingest.DefaultLanguages,
	}, time.Now)

	relevance := relevance_usecase.NewRelevanceUsecase(time.Now)

	return &ApplicationComponents{
		FetchArticlesUsecase:  fetch_articles_usecase.NewFetchArticlesUsecase(articleQuery),
		RankArticlesUsecase:   rank_articles_usecase.NewRankArticlesUsecase(articleQuery, preferences, relevance, cfg.Read.RankWindow),
		IngestArticlesUsecase: ingest,
		AggregationLog:        runLog,
		RateGuard:             rateGuard,
		NewsDBRepository:      newsDB,
		PayloadCache:          cache,
	}
}

// buildSources returns the enabled adapters in processing order.
func buildSources(cfg *config.Config, client *provider_client.Client) []source_adapter_port.SourceAdapter {
	p := cfg.Providers
	var sources []source_adapter_port.SourceAdapter

	if p.Headlines.Enabled {
		sources = append(sources, headlines_source_gateway.NewHeadlinesSourceGateway(client, headlines_source_gateway.Config{
			BaseURL:    p.Headlines.BaseURL,
			APIKey:     p.Headlines.APIKey,
			Categories: p.Headlines.Categories,
			PageSize:   p.Headlines.PageSize,
		}))
	}
	if p.CryptoCompare.Enabled {
		sources = append(sources, cryptocompare_source_gateway.NewCryptoCompareSourceGateway(client, cryptocompare_source_gateway.Config{
			BaseURL: p.CryptoCompare.BaseURL,
			APIKey:  p.CryptoCompare.APIKey,
		}))
	}
	if p.CryptoPanic.Enabled {
		sources = append(sources, cryptopanic_source_gateway.NewCryptoPanicSourceGateway(client, cryptopanic_source_gateway.Config{
			BaseURL: p.CryptoPanic.BaseURL,
			Token:   p.CryptoPanic.Token,
			Filter:  p.CryptoPanic.Filter,
			Kind:    p.CryptoPanic.Kind,
			Regions: p.CryptoPanic.Regions,
		}))
	}
	if p.Crawler.Enabled {
		extractor := crawler_driver.NewPageExtractor(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.HostInterval)
		sources = append(sources, crawler_source_gateway.NewCrawlerSourceGateway(client, extractor, crawler_source_gateway.Config{
			FeedURLs:        p.Crawler.FeedURLs,
			MaxItemsPerFeed: p.Crawler.MaxItemsPerFeed,
			EnrichContent:   p.Crawler.EnrichContent,
		}))
	}
	if p.Extraction.Enabled {
		sources = append(sources, extraction_source_gateway.NewExtractionSourceGateway(client, extraction_source_gateway.Config{
			BaseURL:    p.Extraction.BaseURL,
			APIKey:     p.Extraction.APIKey,
			TargetURLs: p.Extraction.TargetURLs,
			Prompt:     p.Extraction.Prompt,
		}))
	}

	logger.Logger.Info("Sources configured", "count", len(sources))
	return sources
}
