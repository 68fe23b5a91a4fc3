package fetch_articles_usecase

import (
	"context"
	"fmt"
	"strings"

	"news-pipeline/domain"
	"news-pipeline/port/article_query_port"
	"news-pipeline/utils/logger"
)

type FetchArticlesUsecase struct {
	articleQuery article_query_port.ArticleQueryPort
}

func NewFetchArticlesUsecase(articleQuery article_query_port.ArticleQueryPort) *FetchArticlesUsecase {
	return &FetchArticlesUsecase{articleQuery: articleQuery}
}

// ValidateFilter rejects filters the store cannot answer meaningfully.
// Paging and sort defaults are applied by Normalize, not rejected here.
func ValidateFilter(f domain.ArticleFilter) error {
	if f.Category != "" {
		if _, ok := domain.ParseCategory(f.Category); !ok {
			return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidFilter, f.Category)
		}
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return fmt.Errorf("%w: from is after to", domain.ErrInvalidFilter)
	}
	if f.MinScore < 0 || f.MinScore > 100 {
		return fmt.Errorf("%w: minScore must be within 0..100", domain.ErrInvalidFilter)
	}
	if f.Limit < 0 || f.Limit > domain.MaxPageLimit {
		return fmt.Errorf("%w: limit must be within 1..%d", domain.ErrInvalidFilter, domain.MaxPageLimit)
	}
	return nil
}

// GetArticles returns one page of stored articles and the total match count.
func (u *FetchArticlesUsecase) GetArticles(ctx context.Context, filter domain.ArticleFilter) (*domain.ArticlePage, error) {
	if err := ValidateFilter(filter); err != nil {
		logger.Logger.WarnContext(ctx, "Rejected article filter", "error", err)
		return nil, err
	}
	filter = filter.Normalize()
	filter.Search = strings.TrimSpace(filter.Search)

	articles, total, err := u.articleQuery.QueryArticles(ctx, filter)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to fetch articles", "error", err, "page", filter.Page, "limit", filter.Limit)
		return nil, err
	}
	if articles == nil {
		articles = []domain.Article{}
	}

	logger.Logger.InfoContext(ctx, "Fetched articles", "count", len(articles), "total", total, "sort", filter.Sort)
	return &domain.ArticlePage{Articles: articles, TotalCount: total}, nil
}
