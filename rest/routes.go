package rest

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"news-pipeline/config"
	"news-pipeline/di"
	middleware_custom "news-pipeline/middleware"
	"news-pipeline/utils/logger"
)

const serviceName = "news-pipeline"

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	h := &Handlers{
		Articles:      container.FetchArticlesUsecase,
		Ranker:        container.RankArticlesUsecase,
		Ingest:        container.IngestArticlesUsecase,
		IngestTimeout: cfg.Ingest.Timeout,
		Checks:        map[string]HealthCheck{},
	}
	if container.NewsDBRepository != nil {
		h.Checks["database"] = container.NewsDBRepository.Ping
	}
	if container.PayloadCache != nil {
		h.Checks["cache"] = func(ctx context.Context) error { return container.PayloadCache.Ping(ctx) }
	}

	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware(serviceName))
	e.Use(middleware_custom.OTelStatusMiddleware())
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	h.Register(v1)
}

// Register mounts the API routes on g.
func (h *Handlers) Register(g *echo.Group) {
	g.GET("/health", h.handleHealth)
	g.GET("/articles", h.handleGetArticles)
	g.GET("/users/:userId/feed", h.handleUserFeed)
	g.GET("/users/:userId/articles/:articleId/relevance", h.handleExplainRelevance)
	g.POST("/ingest", h.handleIngest)
	g.GET("/ingest/status", h.handleIngestStatus)
}
