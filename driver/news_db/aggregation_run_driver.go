package news_db

import (
	"context"
	"encoding/json"
	"fmt"

	"news-pipeline/domain"
)

const insertRunRecordQuery = `INSERT INTO aggregation_runs (id, run_id, source_id, event_type, status, detail, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

const latestRunRecordsQuery = `SELECT id, run_id, source_id, event_type, status, detail, created_at
	FROM aggregation_runs ORDER BY created_at DESC LIMIT $1`

// AppendRunRecord inserts one append-only run log entry.
func (r *NewsDBRepository) AppendRunRecord(ctx context.Context, record domain.AggregationRunRecord) error {
	if err := r.ready(); err != nil {
		return err
	}

	detail, err := json.Marshal(record.Detail)
	if err != nil {
		return fmt.Errorf("failed to encode run detail: %w", err)
	}

	_, err = r.pool.Exec(ctx, insertRunRecordQuery,
		record.ID,
		record.RunID,
		record.SourceID,
		record.EventType,
		string(record.Status),
		detail,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}
	return nil
}

func (r *NewsDBRepository) LatestRunRecords(ctx context.Context, limit int) ([]domain.AggregationRunRecord, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, latestRunRecordsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run records: %w", err)
	}
	defer rows.Close()

	var records []domain.AggregationRunRecord
	for rows.Next() {
		var (
			rec    domain.AggregationRunRecord
			status string
			detail []byte
		)
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.SourceID, &rec.EventType, &status, &detail, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run record: %w", err)
		}
		rec.Status = domain.RunStatus(status)
		if err := json.Unmarshal(detail, &rec.Detail); err != nil {
			return nil, fmt.Errorf("failed to decode run detail: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
