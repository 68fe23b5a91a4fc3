package news_db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"news-pipeline/domain"
)

const fetchUserPreferenceQuery = `SELECT user_id, keywords, excluded_keywords, categories, sources, languages
	FROM user_preferences WHERE user_id = $1`

func (r *NewsDBRepository) FetchUserPreference(ctx context.Context, userID string) (*domain.UserPreference, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	var p domain.UserPreference
	err := r.pool.QueryRow(ctx, fetchUserPreferenceQuery, userID).Scan(
		&p.UserID,
		&p.Keywords,
		&p.ExcludedKeywords,
		&p.Categories,
		&p.Sources,
		&p.Languages,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPrefsNotFound
		}
		return nil, fmt.Errorf("failed to fetch user preference: %w", err)
	}
	return &p, nil
}
