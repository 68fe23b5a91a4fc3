package news_db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"news-pipeline/domain"
)

// existenceChunkSize bounds the IN-list of one existence query.
const existenceChunkSize = 200

const recentKeysQuery = `SELECT source_id, COALESCE(source_guid, ''), url FROM articles ORDER BY created_at DESC LIMIT $1`

func buildExistingKeysQuery(keys []domain.ArticleKey) (string, []any, error) {
	urls := make([]string, 0, len(keys))
	guids := make([]string, 0, len(keys))
	for _, k := range keys {
		if k.GUID != "" {
			guids = append(guids, k.GUID)
		}
		if k.URL != "" {
			urls = append(urls, k.URL)
		}
	}

	return psql.
		Select("source_id", "COALESCE(source_guid, '')", "url").
		From("articles").
		Where(sq.Or{
			sq.Eq{"url": urls},
			sq.Eq{"source_guid": guids},
		}).
		ToSql()
}

// ExistingKeys looks up which of keys are already stored, chunking the
// lookup so each IN-list stays bounded.
func (r *NewsDBRepository) ExistingKeys(ctx context.Context, keys []domain.ArticleKey) (map[string]struct{}, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	existing := make(map[string]struct{})
	for start := 0; start < len(keys); start += existenceChunkSize {
		end := min(start+existenceChunkSize, len(keys))

		query, args, err := buildExistingKeysQuery(keys[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to build existence query: %w", err)
		}
		if err := r.collectKeys(ctx, existing, query, args...); err != nil {
			return nil, err
		}
	}
	return existing, nil
}

// RecentKeys returns the dedup keys of the latest limit stored articles.
func (r *NewsDBRepository) RecentKeys(ctx context.Context, limit int) (map[string]struct{}, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	existing := make(map[string]struct{}, limit*2)
	if err := r.collectKeys(ctx, existing, recentKeysQuery, limit); err != nil {
		return nil, err
	}
	return existing, nil
}

// collectKeys adds both the dedup key and the bare URL of every row, so a
// GUID-less candidate still matches a stored row that has a GUID.
func (r *NewsDBRepository) collectKeys(ctx context.Context, into map[string]struct{}, query string, args ...any) error {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query existing keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sourceID, guid, url string
		if err := rows.Scan(&sourceID, &guid, &url); err != nil {
			return fmt.Errorf("failed to scan existing key: %w", err)
		}
		into[domain.DedupKey(sourceID, guid, url)] = struct{}{}
		if url != "" {
			into[url] = struct{}{}
		}
	}
	return rows.Err()
}
