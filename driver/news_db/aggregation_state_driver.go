package news_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const lastRunAtQuery = `SELECT last_run_at FROM aggregation_state WHERE source_id = $1`

const markRunQuery = `INSERT INTO aggregation_state (source_id, last_run_at, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (source_id) DO UPDATE SET last_run_at = EXCLUDED.last_run_at, updated_at = NOW()`

// LastRunAt returns the last fresh fetch time of sourceID, if any.
func (r *NewsDBRepository) LastRunAt(ctx context.Context, sourceID string) (time.Time, bool, error) {
	if err := r.ready(); err != nil {
		return time.Time{}, false, err
	}

	var at time.Time
	if err := r.pool.QueryRow(ctx, lastRunAtQuery, sourceID).Scan(&at); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to read last run: %w", err)
	}
	return at, true, nil
}

func (r *NewsDBRepository) MarkRun(ctx context.Context, sourceID string, at time.Time) error {
	if err := r.ready(); err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, markRunQuery, sourceID, at); err != nil {
		return fmt.Errorf("failed to record last run: %w", err)
	}
	return nil
}
