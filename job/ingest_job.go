package job

import (
	"context"
	"errors"
	"time"

	"news-pipeline/domain"
	"news-pipeline/utils/logger"
)

const IngestJobName = "news-ingest"

// IngestRunner is the orchestrator entry point.
type IngestRunner interface {
	Execute(ctx context.Context, opts domain.IngestOptions) (*domain.IngestReport, error)
}

// IngestJob runs a scheduled aggregation. A run rejected because another
// is still in flight is skipped rather than reported as a failure.
func IngestJob(runner IngestRunner, interval, timeout time.Duration) Job {
	return Job{
		Name:     IngestJobName,
		Interval: interval,
		Timeout:  timeout,
		Fn: func(ctx context.Context) error {
			report, err := runner.Execute(ctx, domain.IngestOptions{})
			if errors.Is(err, domain.ErrIngestInProgress) {
				logger.Logger.InfoContext(ctx, "scheduled ingest skipped, previous run still active")
				return nil
			}
			if err != nil {
				return err
			}
			logger.Logger.InfoContext(ctx, "scheduled ingest finished",
				"run_id", report.RunID,
				"status", report.Status,
				"inserted", report.Inserted,
				"failed", report.Failed)
			return nil
		},
	}
}
