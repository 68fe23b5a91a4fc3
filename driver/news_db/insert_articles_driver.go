package news_db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"news-pipeline/domain"
	"news-pipeline/utils/logger"
)

const articleColumnCount = 15

const insertArticlesPrefix = `INSERT INTO articles (
	id, source_id, source_guid, title, description, content, source_name, url,
	image_url, published_at, language, category, tags, base_score, created_at
) VALUES `

// Rows that hit either unique index are skipped.
const insertArticlesSuffix = ` ON CONFLICT DO NOTHING`

func buildInsertArticlesQuery(n int) string {
	placeholders := make([]string, 0, n)
	for i := 0; i < n; i++ {
		cols := make([]string, articleColumnCount)
		for c := 0; c < articleColumnCount; c++ {
			cols[c] = fmt.Sprintf("$%d", i*articleColumnCount+c+1)
		}
		placeholders = append(placeholders, "("+strings.Join(cols, ", ")+")")
	}
	return insertArticlesPrefix + strings.Join(placeholders, ", ") + insertArticlesSuffix
}

func articleArgs(a domain.Article) []any {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return []any{
		a.ID,
		a.SourceID,
		nullableString(a.SourceGUID),
		a.Title,
		a.Description,
		a.Content,
		a.SourceName,
		a.URL,
		a.ImageURL,
		a.PublishedAt,
		a.Language,
		string(a.Category),
		tags,
		a.BaseScore,
		a.CreatedAt,
	}
}

// InsertArticles writes one batch in a single transaction and returns the
// number of rows actually inserted.
func (r *NewsDBRepository) InsertArticles(ctx context.Context, articles []domain.Article) (int, error) {
	if err := r.ready(); err != nil {
		return 0, err
	}
	if len(articles) == 0 {
		return 0, nil
	}

	values := make([]any, 0, len(articles)*articleColumnCount)
	for _, a := range articles {
		values = append(values, articleArgs(a)...)
	}
	query := buildInsertArticlesQuery(len(articles))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	tag, err := tx.Exec(ctx, query, values...)
	if err != nil {
		rollback(ctx, tx)
		return 0, fmt.Errorf("failed to batch insert articles: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	inserted := int(tag.RowsAffected())
	logger.Logger.InfoContext(ctx, "Batch inserted articles",
		"requested", len(articles),
		"inserted", inserted)
	return inserted, nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to rollback transaction", "error", err)
	}
}
