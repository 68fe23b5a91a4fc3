package rest

import (
	"context"
	"time"

	"news-pipeline/domain"
)

type ArticleReader interface {
	GetArticles(ctx context.Context, filter domain.ArticleFilter) (*domain.ArticlePage, error)
}

type ArticleRanker interface {
	RankArticlesForUser(ctx context.Context, userID string, filter domain.ArticleFilter) (*domain.RankedArticlePage, error)
	ExplainRelevance(ctx context.Context, userID, articleID string) (*domain.ScoredArticle, error)
}

type IngestRunner interface {
	Execute(ctx context.Context, opts domain.IngestOptions) (*domain.IngestReport, error)
	Status() domain.IngestStatus
}

// HealthCheck checks one dependency.
type HealthCheck func(ctx context.Context) error

// Handlers serves the HTTP API.
type Handlers struct {
	Articles ArticleReader
	Ranker   ArticleRanker
	Ingest   IngestRunner
	Checks   map[string]HealthCheck
	// IngestTimeout bounds a manually triggered run.
	IngestTimeout time.Duration

	now func() time.Time
}

func (h *Handlers) timestamp() time.Time {
	if h.now != nil {
		return h.now().UTC()
	}
	return time.Now().UTC()
}
