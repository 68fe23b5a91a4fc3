package news_db

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
)

func TestNewsDBRepository_AppendRunRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC)
	record := domain.AggregationRunRecord{
		ID:        "rec-1",
		RunID:     "run-1",
		SourceID:  "headlines",
		EventType: domain.EventTypeSourceIngest,
		Status:    domain.RunStatusPartialSuccess,
		Detail:    domain.RunDetail{Fetched: 30, Inserted: 25, Failed: 5},
		CreatedAt: createdAt,
	}
	detail, err := json.Marshal(record.Detail)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(insertRunRecordQuery)).
		WithArgs("rec-1", "run-1", "headlines", domain.EventTypeSourceIngest, "partial_success", detail, createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewNewsDBRepository(mock).AppendRunRecord(context.Background(), record))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_LatestRunRecords(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "run_id", "source_id", "event_type", "status", "detail", "created_at"}).
		AddRow("rec-1", "run-1", "cryptoA", domain.EventTypeSourceIngest, "error",
			[]byte(`{"error_kind":"auth","error":"unauthorized"}`), createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(latestRunRecordsQuery)).
		WithArgs(10).
		WillReturnRows(rows)

	records, err := NewNewsDBRepository(mock).LatestRunRecords(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.RunStatusError, records[0].Status)
	assert.Equal(t, domain.ErrorKindAuth, records[0].Detail.ErrorKind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_LastRunAt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2026, 10, 15, 5, 45, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(lastRunAtQuery)).
		WithArgs("headlines").
		WillReturnRows(pgxmock.NewRows([]string{"last_run_at"}).AddRow(at))
	mock.ExpectQuery(regexp.QuoteMeta(lastRunAtQuery)).
		WithArgs("crawler").
		WillReturnError(pgx.ErrNoRows)

	repo := NewNewsDBRepository(mock)

	got, ok, err := repo.LastRunAt(context.Background(), "headlines")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, at, got)

	_, ok, err = repo.LastRunAt(context.Background(), "crawler")
	require.NoError(t, err)
	assert.False(t, ok, "a source that never ran has no last run")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_MarkRun(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(markRunQuery)).
		WithArgs("cryptoB", at).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewNewsDBRepository(mock).MarkRun(context.Background(), "cryptoB", at))
	require.NoError(t, mock.ExpectationsWereMet())
}
