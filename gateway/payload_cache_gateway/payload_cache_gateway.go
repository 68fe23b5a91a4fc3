package payload_cache_gateway

import (
	"context"
	"errors"
	"time"

	"news-pipeline/domain"
	"news-pipeline/driver/payload_cache"
	"news-pipeline/utils/logger"
)

// PayloadCacheGateway implements payload_cache_port.PayloadCachePort.
type PayloadCacheGateway struct {
	cache *payload_cache.PayloadCache
}

func NewPayloadCacheGateway(cache *payload_cache.PayloadCache) *PayloadCacheGateway {
	return &PayloadCacheGateway{cache: cache}
}

func (g *PayloadCacheGateway) GetPayload(ctx context.Context, sourceID string) (*domain.ProviderPayload, bool, error) {
	if g.cache == nil {
		return nil, false, errors.New("payload cache not available")
	}

	payload, ok, err := g.cache.Get(ctx, sourceID)
	if err != nil {
		logger.Logger.WarnContext(ctx, "Payload cache read failed", "source_id", sourceID, "error", err)
		return nil, false, err
	}
	if ok && payload.SourceID != sourceID {
		return nil, false, nil
	}
	return payload, ok, nil
}

func (g *PayloadCacheGateway) SetPayload(ctx context.Context, payload *domain.ProviderPayload, ttl time.Duration) error {
	if g.cache == nil {
		return errors.New("payload cache not available")
	}
	return g.cache.Set(ctx, payload, ttl)
}

func (g *PayloadCacheGateway) DeletePayload(ctx context.Context, sourceID string) error {
	if g.cache == nil {
		return errors.New("payload cache not available")
	}
	return g.cache.Delete(ctx, sourceID)
}
