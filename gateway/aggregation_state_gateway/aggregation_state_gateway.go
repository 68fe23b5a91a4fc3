package aggregation_state_gateway

import (
	"context"
	"errors"
	"time"

	"news-pipeline/driver/news_db"
)

type AggregationStateGateway struct {
	db *news_db.NewsDBRepository
}

func NewAggregationStateGateway(db *news_db.NewsDBRepository) *AggregationStateGateway {
	return &AggregationStateGateway{db: db}
}

func (g *AggregationStateGateway) LastRunAt(ctx context.Context, sourceID string) (time.Time, bool, error) {
	if g.db == nil {
		return time.Time{}, false, errors.New("database connection not available")
	}
	return g.db.LastRunAt(ctx, sourceID)
}

func (g *AggregationStateGateway) MarkRun(ctx context.Context, sourceID string, at time.Time) error {
	if g.db == nil {
		return errors.New("database connection not available")
	}
	return g.db.MarkRun(ctx, sourceID, at.UTC())
}
