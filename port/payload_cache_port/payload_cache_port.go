package payload_cache_port

//go:generate go run go.uber.org/mock/mockgen -source=payload_cache_port.go -destination=../../mocks/mock_payload_cache_port.go -package=mocks PayloadCachePort

import (
	"context"
	"news-pipeline/domain"
	"time"
)

type PayloadCachePort interface {
	// GetPayload returns (nil, false, nil) on a miss.
	GetPayload(ctx context.Context, sourceID string) (*domain.ProviderPayload, bool, error)
	SetPayload(ctx context.Context, payload *domain.ProviderPayload, ttl time.Duration) error
	DeletePayload(ctx context.Context, sourceID string) error
}
