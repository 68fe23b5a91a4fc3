package ingest_articles_usecase

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"news-pipeline/domain"
	"news-pipeline/port/source_adapter_port"
	"news-pipeline/utils/logger"
)

// sourceRun accumulates what happened to one source during a run.
type sourceRun struct {
	report       domain.SourceReport
	candidates   []domain.CandidateArticle
	err          error
	fetchSeconds float64
	batches      int
}

func newSourceRun(sourceID string, startedAt time.Time, force bool, languages []string) *sourceRun {
	return &sourceRun{
		report: domain.SourceReport{
			SourceID: sourceID,
			Status:   domain.RunStatusRunning,
			Detail: domain.RunDetail{
				StartedAt:   startedAt,
				ForceUpdate: force,
				Languages:   languages,
			},
		},
	}
}

func (r *sourceRun) fail(err error, kind domain.ErrorKind) {
	r.err = err
	r.report.Detail.ErrorKind = kind
	r.report.Detail.Error = err.Error()

	var open *domain.CircuitOpenError
	if errors.As(err, &open) {
		r.report.Detail.RetryAfter = open.RetryAfter.Round(time.Second).String()
	}
}

// settle derives the final status from the fetch outcome and batch results.
func (r *sourceRun) settle(finishedAt time.Time) {
	d := &r.report.Detail
	d.FinishedAt = finishedAt

	switch {
	case r.err != nil && d.ErrorKind == domain.ErrorKindCircuitOpen:
		r.report.Status = domain.RunStatusSkipped
	case r.err != nil:
		r.report.Status = domain.RunStatusError
	case d.Failed > 0 && d.Inserted == 0:
		r.report.Status = domain.RunStatusError
		d.ErrorKind = domain.ErrorKindPersistence
		if d.Error == "" && len(d.BatchErrors) > 0 {
			d.Error = d.BatchErrors[0].Error
		}
	case d.Failed > 0:
		r.report.Status = domain.RunStatusPartialSuccess
	default:
		r.report.Status = domain.RunStatusSuccess
	}
}

// runSource fetches and converts one source. A panic inside an adapter is
// contained here and reported as a failed source.
func (u *IngestArticlesUsecase) runSource(ctx context.Context, src source_adapter_port.SourceAdapter, params domain.FetchParams, force bool) (run *sourceRun) {
	sourceID := src.SourceID()
	ctx = logger.WithSourceID(ctx, sourceID)
	log := logger.GlobalContext.WithContext(ctx)

	run = newSourceRun(sourceID, u.now(), force, params.Languages)
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Source panicked", "panic", r, "stack", string(debug.Stack()))
			run.fail(fmt.Errorf("%s: panic: %v", sourceID, r), domain.ErrorKindPanic)
		}
	}()

	payload, fromCache, err := u.obtainPayload(ctx, src, params, force, run)
	if err != nil {
		log.WarnContext(ctx, "Source fetch failed", "error", err, "error_kind", domain.KindOf(err))
		run.fail(err, domain.KindOf(err))
		return run
	}

	batch, err := src.ToCandidates(payload)
	if err == nil && batch == nil {
		err = &domain.MalformedPayloadError{SourceID: sourceID, Reason: "adapter returned no batch"}
	}
	if err != nil {
		log.WarnContext(ctx, "Source payload could not be converted", "error", err, "from_cache", fromCache)
		run.fail(err, domain.KindOf(err))
		return run
	}

	// Only payloads that convert cleanly are cached.
	if !fromCache {
		if err := u.deps.Gate.StoreFresh(ctx, payload); err != nil {
			log.WarnContext(ctx, "Fresh payload not cached", "error", err)
		}
	}

	u.fillLanguages(batch.Candidates)

	run.candidates = batch.Candidates
	d := &run.report.Detail
	d.FromCache = fromCache
	d.Valid = len(batch.Candidates)
	d.Rejected = batch.Rejected
	d.Fetched = d.Valid + d.Rejected

	log.InfoContext(ctx, "Source fetched",
		"valid", d.Valid,
		"rejected", d.Rejected,
		"from_cache", fromCache)
	return run
}

// obtainPayload serves the payload from cache when the gate allows it and
// otherwise fetches under the breaker.
func (u *IngestArticlesUsecase) obtainPayload(ctx context.Context, src source_adapter_port.SourceAdapter, params domain.FetchParams, force bool, run *sourceRun) (*domain.ProviderPayload, bool, error) {
	sourceID := src.SourceID()

	decision := u.deps.Gate.Evaluate(ctx, sourceID, force)
	if decision.UseCache {
		if payload, ok := u.deps.Gate.GetCached(ctx, sourceID); ok && payload != nil {
			return payload, true, nil
		}
		logger.Logger.InfoContext(ctx, "Cache gate allowed reuse but nothing is cached", "source_id", sourceID, "reason", decision.Reason)
	}

	if err := u.deps.Guard.Attempt(sourceID); err != nil {
		return nil, false, err
	}

	start := time.Now()
	payload, err := src.FetchBatch(ctx, params)
	run.fetchSeconds = time.Since(start).Seconds()

	if err == nil && payload == nil {
		err = &domain.MalformedPayloadError{SourceID: sourceID, Reason: "empty payload"}
	}
	u.recordOutcome(sourceID, err)
	if err != nil {
		return nil, false, err
	}
	return payload, false, nil
}

// recordOutcome feeds the breaker. Malformed payloads are a data problem and
// cancellations are ours, so neither counts as an upstream failure.
func (u *IngestArticlesUsecase) recordOutcome(sourceID string, err error) {
	switch {
	case err == nil:
		u.deps.Guard.RecordSuccess(sourceID)
	case errors.Is(err, domain.ErrMalformedPayload), isCancellation(err):
	case errors.Is(err, domain.ErrUpstreamRateLimited):
		u.deps.Guard.RecordRateLimited(sourceID)
		u.deps.Guard.RecordFailure(sourceID)
	default:
		u.deps.Guard.RecordFailure(sourceID)
	}
}

// fillLanguages detects the language of candidates the provider left blank.
func (u *IngestArticlesUsecase) fillLanguages(candidates []domain.CandidateArticle) {
	if u.deps.Detector == nil {
		return
	}
	for i := range candidates {
		if candidates[i].Language != "" {
			continue
		}
		text := strings.TrimSpace(candidates[i].Title + ". " + candidates[i].Description)
		if lang, ok := u.deps.Detector.Detect(text); ok {
			candidates[i].Language = lang
		}
	}
}
