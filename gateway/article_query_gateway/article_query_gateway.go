package article_query_gateway

import (
	"context"
	"errors"
	"fmt"

	"news-pipeline/domain"
	"news-pipeline/driver/news_db"
	"news-pipeline/utils/logger"
)

// ArticleQueryGateway implements article_query_port.ArticleQueryPort.
type ArticleQueryGateway struct {
	db *news_db.NewsDBRepository
}

func NewArticleQueryGateway(db *news_db.NewsDBRepository) *ArticleQueryGateway {
	return &ArticleQueryGateway{db: db}
}

func (g *ArticleQueryGateway) QueryArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	if g.db == nil {
		return nil, 0, errors.New("database connection not available")
	}

	articles, total, err := g.db.QueryArticles(ctx, filter)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error querying articles", "error", err, "category", filter.Category)
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	return articles, total, nil
}

func (g *ArticleQueryGateway) FetchArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	if g.db == nil {
		return nil, errors.New("database connection not available")
	}

	article, err := g.db.FetchArticleByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrArticleNotFound) {
			logger.Logger.ErrorContext(ctx, "Error fetching article", "error", err, "article_id", id)
		}
		return nil, err
	}
	return article, nil
}
