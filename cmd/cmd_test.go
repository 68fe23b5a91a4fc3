package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
)

type fakeIngest struct {
	opts   domain.IngestOptions
	report *domain.IngestReport
	err    error
}

func (f *fakeIngest) Execute(_ context.Context, opts domain.IngestOptions) (*domain.IngestReport, error) {
	f.opts = opts
	return f.report, f.err
}

type fakeRuns struct {
	limit   int
	records []domain.AggregationRunRecord
}

func (f *fakeRuns) LatestRunRecords(_ context.Context, limit int) ([]domain.AggregationRunRecord, error) {
	f.limit = limit
	return f.records, nil
}

func withRuntime(t *testing.T, rt *runtime) {
	t.Helper()
	prev := openRuntime
	openRuntime = func(context.Context) (*runtime, error) { return rt, nil }
	t.Cleanup(func() {
		openRuntime = prev
		jsonOutput = false
		_ = ingestCmd.Flags().Set("force", "false")
		_ = ingestCmd.Flags().Set("single-category", "false")
		_ = runsCmd.Flags().Set("limit", "20")
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func sampleReport() *domain.IngestReport {
	start := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	return &domain.IngestReport{
		RunID:      "run-7",
		Status:     domain.RunStatusPartialSuccess,
		StartedAt:  start,
		FinishedAt: start.Add(3 * time.Second),
		Inserted:   12,
		Sources: []domain.SourceReport{
			{SourceID: "headlines", Status: domain.RunStatusSuccess, Detail: domain.RunDetail{Fetched: 20, Valid: 18, Inserted: 12, Duplicates: 6}},
			{SourceID: "cryptopanic", Status: domain.RunStatusSkipped, Detail: domain.RunDetail{Error: "circuit open", RetryAfter: "9m0s"}},
		},
	}
}

func TestIngestCommand_PrintsTable(t *testing.T) {
	ingest := &fakeIngest{report: sampleReport()}
	withRuntime(t, &runtime{ingest: ingest})

	out, err := execute(t, "ingest", "--force", "--lang", "en,de")
	require.NoError(t, err)

	assert.Equal(t, domain.IngestOptions{ForceUpdate: true, Languages: []string{"en", "de"}}, ingest.opts)
	assert.Contains(t, out, "run run-7: partial_success (inserted 12, failed 0, 3s)")
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, "circuit open (retry after 9m0s)")
	assert.True(t, strings.Contains(out, "headlines"))
}

func TestIngestCommand_JSON(t *testing.T) {
	withRuntime(t, &runtime{ingest: &fakeIngest{report: sampleReport()}})

	out, err := execute(t, "ingest", "--json")
	require.NoError(t, err)

	var got domain.IngestReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "run-7", got.RunID)
	assert.Len(t, got.Sources, 2)
}

func TestIngestCommand_TotalFailureReturnsError(t *testing.T) {
	report := &domain.IngestReport{RunID: "run-8", Status: domain.RunStatusError}
	withRuntime(t, &runtime{ingest: &fakeIngest{report: report, err: domain.ErrNoSourcesHealthy}})

	out, err := execute(t, "ingest")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSourcesHealthy))
	assert.Contains(t, out, "run run-8: error")
}

func TestRunsCommand(t *testing.T) {
	runs := &fakeRuns{records: []domain.AggregationRunRecord{{
		RunID:     "run-7",
		SourceID:  "headlines",
		Status:    domain.RunStatusSuccess,
		Detail:    domain.RunDetail{Inserted: 12, Duplicates: 6},
		CreatedAt: time.Date(2026, 5, 4, 12, 0, 3, 0, time.UTC),
	}}}
	withRuntime(t, &runtime{runs: runs})

	out, err := execute(t, "runs", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, runs.limit)
	assert.Contains(t, out, "2026-05-04T12:00:03Z")
	assert.Contains(t, out, "headlines")
}

func TestRunsCommand_RejectsBadLimit(t *testing.T) {
	withRuntime(t, &runtime{runs: &fakeRuns{}})

	_, err := execute(t, "runs", "--limit", "0")
	require.Error(t, err)
}
