// Package payload_cache stores raw provider payloads in Redis with an
// in-process LRU in front of it.
package payload_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"news-pipeline/domain"
)

// localTTLCap bounds how long the in-process copy may outlive a Redis write
// done by another replica.
const localTTLCap = 5 * time.Minute

type PayloadCache struct {
	client    redis.UniversalClient
	keyPrefix string
	local     *expirable.LRU[string, *domain.ProviderPayload]
}

// NewPayloadCacheWithURL connects to Redis at url. localEntries <= 0 disables
// the in-process front cache.
func NewPayloadCacheWithURL(url, keyPrefix string, localEntries int) (*PayloadCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewPayloadCache(redis.NewClient(opts), keyPrefix, localEntries), nil
}

func NewPayloadCache(client redis.UniversalClient, keyPrefix string, localEntries int) *PayloadCache {
	c := &PayloadCache{client: client, keyPrefix: keyPrefix}
	if localEntries > 0 {
		c.local = expirable.NewLRU[string, *domain.ProviderPayload](localEntries, nil, localTTLCap)
	}
	return c
}

func (c *PayloadCache) key(sourceID string) string {
	return c.keyPrefix + sourceID
}

// Get returns the cached payload for sourceID. A miss is (nil, false, nil).
func (c *PayloadCache) Get(ctx context.Context, sourceID string) (*domain.ProviderPayload, bool, error) {
	if c.local != nil {
		if p, ok := c.local.Get(sourceID); ok {
			return p, true, nil
		}
	}

	raw, err := c.client.Get(ctx, c.key(sourceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", sourceID, err)
	}

	var payload domain.ProviderPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// A corrupt entry behaves like a miss and is dropped.
		_ = c.client.Del(ctx, c.key(sourceID)).Err()
		return nil, false, nil
	}

	if c.local != nil {
		c.local.Add(sourceID, &payload)
	}
	return &payload, true, nil
}

// Set stores payload under its source for ttl.
func (c *PayloadCache) Set(ctx context.Context, payload *domain.ProviderPayload, ttl time.Duration) error {
	if payload == nil {
		return errors.New("payload is nil")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := c.client.Set(ctx, c.key(payload.SourceID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", payload.SourceID, err)
	}
	if c.local != nil && ttl >= localTTLCap {
		c.local.Add(payload.SourceID, payload)
	}
	return nil
}

func (c *PayloadCache) Delete(ctx context.Context, sourceID string) error {
	if c.local != nil {
		c.local.Remove(sourceID)
	}
	if err := c.client.Del(ctx, c.key(sourceID)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", sourceID, err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (c *PayloadCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *PayloadCache) Close() error {
	return c.client.Close()
}
