package article_store_port

//go:generate go run go.uber.org/mock/mockgen -source=article_store_port.go -destination=../../mocks/mock_article_store_port.go -package=mocks ArticleStorePort

import (
	"context"
	"news-pipeline/domain"
)

type ArticleStorePort interface {
	// InsertArticles writes one batch and returns how many rows were new.
	InsertArticles(ctx context.Context, articles []domain.Article) (int, error)
	// ExistingKeys returns the dedup keys among keys that are already stored.
	ExistingKeys(ctx context.Context, keys []domain.ArticleKey) (map[string]struct{}, error)
	// RecentKeys returns the dedup keys of the most recent limit articles.
	RecentKeys(ctx context.Context, limit int) (map[string]struct{}, error)
}
