package aggregation_log_port

//go:generate go run go.uber.org/mock/mockgen -source=aggregation_log_port.go -destination=../../mocks/mock_aggregation_log_port.go -package=mocks AggregationLogPort

import (
	"context"
	"news-pipeline/domain"
)

type AggregationLogPort interface {
	AppendRunRecord(ctx context.Context, record domain.AggregationRunRecord) error
	LatestRunRecords(ctx context.Context, limit int) ([]domain.AggregationRunRecord, error)
}
