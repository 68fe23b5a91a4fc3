package ingest_articles_usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"news-pipeline/domain"
	"news-pipeline/metrics"
	"news-pipeline/port/aggregation_log_port"
	"news-pipeline/port/article_store_port"
	"news-pipeline/port/language_detector_port"
	"news-pipeline/port/source_adapter_port"
	"news-pipeline/usecase/base_score_usecase"
	"news-pipeline/usecase/cache_gate_usecase"
	"news-pipeline/usecase/classify_usecase"
	"news-pipeline/usecase/dedup_usecase"
	"news-pipeline/utils/logger"
	"news-pipeline/utils/rate_limiter"
)

const (
	MinBatchSize = 20
	MaxBatchSize = 50
)

// Guard is the per-source breaker, satisfied by resilience.RateGuard.
type Guard interface {
	Attempt(sourceID string) error
	RecordSuccess(sourceID string)
	RecordFailure(sourceID string)
	RecordRateLimited(sourceID string)
	Snapshot(sourceID string) domain.BreakerState
}

// CacheGate is satisfied by cache_gate_usecase.CacheGateUsecase.
type CacheGate interface {
	Evaluate(ctx context.Context, sourceID string, forceUpdate bool) cache_gate_usecase.Decision
	GetCached(ctx context.Context, sourceID string) (*domain.ProviderPayload, bool)
	StoreFresh(ctx context.Context, payload *domain.ProviderPayload) error
}

type Config struct {
	SourceDelay      time.Duration
	BatchSize        int
	BatchDelay       time.Duration
	DefaultLanguages []string
}

// batchSize clamps the configured size to [MinBatchSize, MaxBatchSize].
func (c Config) batchSize() int {
	return min(max(c.BatchSize, MinBatchSize), MaxBatchSize)
}

type Deps struct {
	Sources    []source_adapter_port.SourceAdapter
	Gate       CacheGate
	Guard      Guard
	Classifier *classify_usecase.ClassifyUsecase
	Scorer     *base_score_usecase.BaseScoreUsecase
	Dedup      *dedup_usecase.DedupUsecase
	Store      article_store_port.ArticleStorePort
	RunLog     aggregation_log_port.AggregationLogPort
	// Detector is optional.
	Detector language_detector_port.LanguageDetector
}

// IngestArticlesUsecase runs one aggregation pass over every source. Sources
// are processed one at a time; only one run may be in flight.
type IngestArticlesUsecase struct {
	deps   Deps
	config Config
	now    func() time.Time

	running atomic.Bool

	mu      sync.Mutex
	current *domain.IngestReport
	last    *domain.IngestReport
}

func NewIngestArticlesUsecase(deps Deps, config Config, now func() time.Time) *IngestArticlesUsecase {
	if now == nil {
		now = time.Now
	}
	return &IngestArticlesUsecase{deps: deps, config: config, now: now}
}

// SourceIDs lists the configured sources in processing order.
func (u *IngestArticlesUsecase) SourceIDs() []string {
	ids := make([]string, 0, len(u.deps.Sources))
	for _, s := range u.deps.Sources {
		ids = append(ids, s.SourceID())
	}
	return ids
}

// Execute runs every source and persists the new articles. It returns an
// error only when the run failed as a whole; the report is returned in that
// case too.
func (u *IngestArticlesUsecase) Execute(ctx context.Context, opts domain.IngestOptions) (*domain.IngestReport, error) {
	if !u.running.CompareAndSwap(false, true) {
		return nil, domain.ErrIngestInProgress
	}
	defer u.running.Store(false)

	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.GlobalContext.WithContext(ctx)

	report := &domain.IngestReport{
		RunID:     runID,
		Status:    domain.RunStatusRunning,
		StartedAt: u.now(),
		Sources:   make([]domain.SourceReport, 0, len(u.deps.Sources)),
	}
	for _, src := range u.deps.Sources {
		report.Sources = append(report.Sources, domain.SourceReport{SourceID: src.SourceID(), Status: domain.RunStatusRunning})
	}
	u.setCurrent(report)

	params := domain.FetchParams{
		Languages:      u.languages(opts),
		SingleCategory: opts.SingleCategory,
	}
	log.InfoContext(ctx, "Ingest run started",
		"sources", len(u.deps.Sources),
		"force_update", opts.ForceUpdate,
		"languages", params.Languages)

	pacer := rate_limiter.NewPacer(u.config.SourceDelay)
	runs := make([]*sourceRun, 0, len(u.deps.Sources))
	for i, src := range u.deps.Sources {
		var run *sourceRun
		if err := pacer.Wait(ctx); err != nil {
			run = newSourceRun(src.SourceID(), u.now(), opts.ForceUpdate, params.Languages)
			run.fail(err, domain.ErrorKindTransient)
		} else {
			run = u.runSource(ctx, src, params, opts.ForceUpdate)
		}
		runs = append(runs, run)
		u.updateSource(i, run.report)
	}

	u.persist(ctx, runs)

	runErr := u.finish(ctx, report, runs)

	log.InfoContext(ctx, "Ingest run finished",
		"status", report.Status,
		"inserted", report.Inserted,
		"failed", report.Failed,
		"duration_ms", report.FinishedAt.Sub(report.StartedAt).Milliseconds())
	if runErr != nil {
		metrics.RecordError("ingest", string(domain.KindOf(runErr)))
	}
	return report, runErr
}

// finish settles per-source statuses, writes run records and decides the
// overall outcome.
func (u *IngestArticlesUsecase) finish(ctx context.Context, report *domain.IngestReport, runs []*sourceRun) error {
	finishedAt := u.now()

	attempted, errored, skipped := 0, 0, 0
	batches, failedBatches := 0, 0
	for i, run := range runs {
		run.settle(finishedAt)
		report.Sources[i] = run.report
		report.Inserted += run.report.Detail.Inserted
		report.Failed += run.report.Detail.Failed
		batches += run.batches
		failedBatches += len(run.report.Detail.BatchErrors)

		switch run.report.Status {
		case domain.RunStatusSkipped:
			skipped++
		case domain.RunStatusError:
			attempted++
			errored++
		default:
			attempted++
		}

		u.recordRun(ctx, report.RunID, run)
	}

	var runErr error
	switch {
	case batches > 0 && failedBatches == batches:
		runErr = fmt.Errorf("%w: every batch failed", domain.ErrPersistence)
	case attempted > 0 && errored == attempted:
		runErr = domain.ErrNoSourcesHealthy
	}

	switch {
	case runErr != nil:
		report.Status = domain.RunStatusError
	case len(runs) == 0 || skipped == len(runs):
		report.Status = domain.RunStatusSkipped
	case errored == 0 && !slices.ContainsFunc(runs, func(r *sourceRun) bool {
		return r.report.Status == domain.RunStatusPartialSuccess
	}):
		report.Status = domain.RunStatusSuccess
	default:
		report.Status = domain.RunStatusPartialSuccess
	}
	report.FinishedAt = finishedAt

	u.mu.Lock()
	final := cloneReport(report)
	u.last = &final
	u.current = nil
	u.mu.Unlock()

	return runErr
}

func (u *IngestArticlesUsecase) recordRun(ctx context.Context, runID string, run *sourceRun) {
	sourceID := run.report.SourceID
	d := run.report.Detail

	metrics.RecordSourceRun(sourceID, string(run.report.Status), run.fetchSeconds)
	metrics.RecordArticles(sourceID, "inserted", d.Inserted)
	metrics.RecordArticles(sourceID, "failed", d.Failed)
	metrics.RecordArticles(sourceID, "duplicate", d.Duplicates)
	metrics.RecordArticles(sourceID, "rejected", d.Rejected)
	metrics.SetBreakerOpen(sourceID, u.deps.Guard.Snapshot(sourceID).TrippedAt != nil)

	record := domain.AggregationRunRecord{
		ID:        uuid.NewString(),
		RunID:     runID,
		SourceID:  sourceID,
		EventType: domain.EventTypeSourceIngest,
		Status:    run.report.Status,
		Detail:    d,
		CreatedAt: d.FinishedAt,
	}
	if err := u.deps.RunLog.AppendRunRecord(ctx, record); err != nil {
		logger.Logger.WarnContext(ctx, "Failed to append run record", "source_id", sourceID, "error", err)
		metrics.RecordError("append_run_record", string(domain.KindOf(err)))
	}
}

func (u *IngestArticlesUsecase) languages(opts domain.IngestOptions) []string {
	if len(opts.Languages) > 0 {
		return opts.Languages
	}
	return u.config.DefaultLanguages
}

// Status returns the in-memory run state and breaker snapshots.
func (u *IngestArticlesUsecase) Status() domain.IngestStatus {
	st := domain.IngestStatus{Running: u.running.Load()}

	u.mu.Lock()
	if u.current != nil {
		c := cloneReport(u.current)
		st.Current = &c
	}
	if u.last != nil {
		l := cloneReport(u.last)
		st.LastRun = &l
	}
	u.mu.Unlock()

	st.Breakers = make([]domain.BreakerState, 0, len(u.deps.Sources))
	for _, src := range u.deps.Sources {
		st.Breakers = append(st.Breakers, u.deps.Guard.Snapshot(src.SourceID()))
	}
	return st
}

func (u *IngestArticlesUsecase) setCurrent(report *domain.IngestReport) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c := cloneReport(report)
	u.current = &c
}

func (u *IngestArticlesUsecase) updateSource(i int, sr domain.SourceReport) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current != nil && i < len(u.current.Sources) {
		u.current.Sources[i] = sr
	}
}

func cloneReport(r *domain.IngestReport) domain.IngestReport {
	c := *r
	c.Sources = slices.Clone(r.Sources)
	return c
}

// isCancellation reports a caller-side stop rather than an upstream failure.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
