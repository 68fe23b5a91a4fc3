package user_preference_gateway

import (
	"context"
	"errors"

	"news-pipeline/domain"
	"news-pipeline/driver/news_db"
	"news-pipeline/utils/logger"
)

type UserPreferenceGateway struct {
	db *news_db.NewsDBRepository
}

func NewUserPreferenceGateway(db *news_db.NewsDBRepository) *UserPreferenceGateway {
	return &UserPreferenceGateway{db: db}
}

// FetchUserPreference returns domain.ErrPrefsNotFound for unknown users.
func (g *UserPreferenceGateway) FetchUserPreference(ctx context.Context, userID string) (*domain.UserPreference, error) {
	if g.db == nil {
		return nil, errors.New("database connection not available")
	}

	pref, err := g.db.FetchUserPreference(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrPrefsNotFound) {
			logger.Logger.ErrorContext(ctx, "Error fetching user preference", "error", err, "user_id", userID)
		}
		return nil, err
	}
	return pref, nil
}
