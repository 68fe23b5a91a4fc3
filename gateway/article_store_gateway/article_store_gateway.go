package article_store_gateway

import (
	"context"
	"errors"
	"fmt"

	"news-pipeline/domain"
	"news-pipeline/driver/news_db"
	"news-pipeline/utils/logger"
)

// ArticleStoreGateway implements article_store_port.ArticleStorePort.
type ArticleStoreGateway struct {
	db *news_db.NewsDBRepository
}

func NewArticleStoreGateway(db *news_db.NewsDBRepository) *ArticleStoreGateway {
	return &ArticleStoreGateway{db: db}
}

func (g *ArticleStoreGateway) InsertArticles(ctx context.Context, articles []domain.Article) (int, error) {
	if g.db == nil {
		return 0, fmt.Errorf("%w: database connection not available", domain.ErrPersistence)
	}

	inserted, err := g.db.InsertArticles(ctx, articles)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error inserting article batch", "error", err, "size", len(articles))
		return 0, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return inserted, nil
}

func (g *ArticleStoreGateway) ExistingKeys(ctx context.Context, keys []domain.ArticleKey) (map[string]struct{}, error) {
	if g.db == nil {
		return nil, errors.New("database connection not available")
	}
	if len(keys) == 0 {
		return map[string]struct{}{}, nil
	}
	return g.db.ExistingKeys(ctx, keys)
}

func (g *ArticleStoreGateway) RecentKeys(ctx context.Context, limit int) (map[string]struct{}, error) {
	if g.db == nil {
		return nil, errors.New("database connection not available")
	}
	return g.db.RecentKeys(ctx, limit)
}
