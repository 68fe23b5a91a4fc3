package aggregation_log_gateway

import (
	"context"
	"errors"
	"fmt"

	"news-pipeline/domain"
	"news-pipeline/driver/news_db"
)

// AggregationLogGateway implements aggregation_log_port.AggregationLogPort.
type AggregationLogGateway struct {
	db *news_db.NewsDBRepository
}

func NewAggregationLogGateway(db *news_db.NewsDBRepository) *AggregationLogGateway {
	return &AggregationLogGateway{db: db}
}

func (g *AggregationLogGateway) AppendRunRecord(ctx context.Context, record domain.AggregationRunRecord) error {
	if g.db == nil {
		return errors.New("database connection not available")
	}
	if err := g.db.AppendRunRecord(ctx, record); err != nil {
		return fmt.Errorf("append run record for %s: %w", record.SourceID, err)
	}
	return nil
}

func (g *AggregationLogGateway) LatestRunRecords(ctx context.Context, limit int) ([]domain.AggregationRunRecord, error) {
	if g.db == nil {
		return nil, errors.New("database connection not available")
	}
	if limit <= 0 {
		limit = 20
	}
	return g.db.LatestRunRecords(ctx, limit)
}
