package user_preference_port

//go:generate go run go.uber.org/mock/mockgen -source=user_preference_port.go -destination=../../mocks/mock_user_preference_port.go -package=mocks UserPreferencePort

import (
	"context"
	"news-pipeline/domain"
)

type UserPreferencePort interface {
	FetchUserPreference(ctx context.Context, userID string) (*domain.UserPreference, error)
}
