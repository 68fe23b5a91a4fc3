// Package cmd contains the newsctl commands.
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"news-pipeline/config"
	"news-pipeline/di"
	"news-pipeline/domain"
	"news-pipeline/driver/news_db"
	"news-pipeline/driver/payload_cache"
	"news-pipeline/utils/logger"
)

var (
	jsonOutput bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "newsctl",
	Short: "Operate the news ingestion pipeline",
	Long: `newsctl runs ingestion passes and inspects the aggregation log
without going through the HTTP API.

Example usage:
  newsctl ingest                    # One pass over every enabled source
  newsctl ingest --force --lang de  # Bypass the cache gate, German only
  newsctl runs --limit 10           # Latest per-source run records`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitWithWriter(cmd.ErrOrStderr(), logLevel)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr")
}

// IngestRunner runs one orchestrator pass.
type IngestRunner interface {
	Execute(ctx context.Context, opts domain.IngestOptions) (*domain.IngestReport, error)
}

// RunLister reads the aggregation log.
type RunLister interface {
	LatestRunRecords(ctx context.Context, limit int) ([]domain.AggregationRunRecord, error)
}

type runtime struct {
	ingest IngestRunner
	runs   RunLister
	closer io.Closer
}

func (r *runtime) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openRuntime is replaced in tests.
var openRuntime = func(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	pool, err := news_db.InitDBConnectionPool(ctx, cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	cache, err := payload_cache.NewPayloadCacheWithURL(cfg.Redis.URL, cfg.Redis.KeyPrefix, cfg.Redis.LocalEntries)
	if err != nil {
		pool.Close()
		return nil, err
	}

	container := di.NewApplicationComponents(cfg, pool, cache)
	return &runtime{
		ingest: container.IngestArticlesUsecase,
		runs:   container.AggregationLog,
		closer: closerFunc(func() error {
			defer pool.Close()
			return cache.Close()
		}),
	}, nil
}
