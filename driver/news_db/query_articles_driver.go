package news_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"news-pipeline/domain"
)

const articleSelectColumns = `id, source_id, COALESCE(source_guid, ''), title, description, content, source_name, url,
	image_url, published_at, language, category, tags, base_score, created_at`

const fetchArticleByIDQuery = `SELECT ` + articleSelectColumns + ` FROM articles WHERE id = $1`

func applyArticleFilter(b sq.SelectBuilder, f domain.ArticleFilter) sq.SelectBuilder {
	if f.Category != "" {
		b = b.Where(sq.Eq{"category": strings.ToLower(f.Category)})
	}
	if len(f.Tags) > 0 {
		tags := make([]string, 0, len(f.Tags))
		for _, t := range f.Tags {
			tags = append(tags, strings.ToLower(strings.TrimSpace(t)))
		}
		b = b.Where(sq.Expr("tags && ?", tags))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + s + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if f.From != nil {
		b = b.Where(sq.GtOrEq{"published_at": *f.From})
	}
	if f.To != nil {
		b = b.Where(sq.LtOrEq{"published_at": *f.To})
	}
	if f.MinScore > 0 {
		b = b.Where(sq.GtOrEq{"base_score": f.MinScore})
	}
	return b
}

func orderByFor(sort domain.SortKey) []string {
	switch sort {
	case domain.SortOldest:
		return []string{"published_at ASC", "id ASC"}
	case domain.SortScore:
		return []string{"base_score DESC NULLS LAST", "published_at DESC", "id DESC"}
	case domain.SortRandom:
		return []string{"id DESC"}
	default:
		return []string{"published_at DESC", "id DESC"}
	}
}

func buildQueryArticles(f domain.ArticleFilter) (string, []any, error) {
	f = f.Normalize()
	b := applyArticleFilter(psql.Select(articleSelectColumns).From("articles"), f).
		OrderBy(orderByFor(f.Sort)...).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset()))
	return b.ToSql()
}

func buildCountArticles(f domain.ArticleFilter) (string, []any, error) {
	return applyArticleFilter(psql.Select("COUNT(*)").From("articles"), f).ToSql()
}

// QueryArticles returns one filtered, sorted page and the total match count.
func (r *NewsDBRepository) QueryArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	if err := r.ready(); err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := buildCountArticles(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}
	if total == 0 {
		return []domain.Article{}, 0, nil
	}

	query, args, err := buildQueryArticles(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build article query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, filter.Normalize().Limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, total, nil
}

// FetchArticleByID returns domain.ErrArticleNotFound when no row matches.
func (r *NewsDBRepository) FetchArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	a, err := scanArticle(r.pool.QueryRow(ctx, fetchArticleByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var (
		a        domain.Article
		category string
	)
	err := row.Scan(
		&a.ID,
		&a.SourceID,
		&a.SourceGUID,
		&a.Title,
		&a.Description,
		&a.Content,
		&a.SourceName,
		&a.URL,
		&a.ImageURL,
		&a.PublishedAt,
		&a.Language,
		&category,
		&a.Tags,
		&a.BaseScore,
		&a.CreatedAt,
	)
	if err != nil {
		return a, fmt.Errorf("failed to scan article: %w", err)
	}
	a.Category = domain.Category(category)
	return a, nil
}
