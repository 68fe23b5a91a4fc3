package aggregation_state_port

//go:generate go run go.uber.org/mock/mockgen -source=aggregation_state_port.go -destination=../../mocks/mock_aggregation_state_port.go -package=mocks AggregationStatePort

import (
	"context"
	"time"
)

// AggregationStatePort persists the last successful fresh fetch per source.
type AggregationStatePort interface {
	LastRunAt(ctx context.Context, sourceID string) (time.Time, bool, error)
	MarkRun(ctx context.Context, sourceID string, at time.Time) error
}
