package article_query_port

//go:generate go run go.uber.org/mock/mockgen -source=article_query_port.go -destination=../../mocks/mock_article_query_port.go -package=mocks ArticleQueryPort

import (
	"context"
	"news-pipeline/domain"
)

type ArticleQueryPort interface {
	QueryArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error)
	FetchArticleByID(ctx context.Context, id string) (*domain.Article, error)
}
