package ingest_articles_usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"news-pipeline/domain"
	"news-pipeline/metrics"
	"news-pipeline/utils/logger"
	"news-pipeline/utils/rate_limiter"
)

// persist classifies, scores and deduplicates the combined candidates of all
// runs, then writes them in paced batches. Batches never span sources so
// every batch result is attributed to exactly one run record.
func (u *IngestArticlesUsecase) persist(ctx context.Context, runs []*sourceRun) {
	now := u.now()

	var combined []domain.CandidateArticle
	prepared := make(map[string]domain.Article)
	for _, run := range runs {
		for _, c := range run.candidates {
			combined = append(combined, c)
			key := c.DedupKey()
			if _, ok := prepared[key]; !ok {
				prepared[key] = u.prepare(c, now)
			}
		}
	}
	if len(combined) == 0 {
		return
	}

	res, err := u.deps.Dedup.Filter(ctx, combined)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Duplicate lookup failed, nothing persisted", "error", err)
		metrics.RecordError("dedup", string(domain.ErrorKindPersistence))
		for _, run := range runs {
			if len(run.candidates) > 0 && run.err == nil {
				run.report.Detail.Failed = len(run.candidates)
				run.fail(err, domain.ErrorKindPersistence)
			}
		}
		return
	}
	if res.Degraded {
		metrics.RecordError("dedup", "degraded")
	}

	fresh := make(map[string][]domain.Article, len(runs))
	for _, c := range res.Fresh {
		fresh[c.SourceID] = append(fresh[c.SourceID], prepared[c.DedupKey()])
	}

	size := u.config.batchSize()
	pacer := rate_limiter.NewPacer(u.config.BatchDelay)
	batchNo := 0

	for _, run := range runs {
		if len(run.candidates) == 0 {
			continue
		}
		articles := fresh[run.report.SourceID]
		d := &run.report.Detail
		d.Duplicates = len(run.candidates) - len(articles)

		for start := 0; start < len(articles); start += size {
			batch := articles[start:min(start+size, len(articles))]
			batchNo++
			run.batches++

			if err := pacer.Wait(ctx); err != nil {
				d.Failed += len(batch)
				d.BatchErrors = append(d.BatchErrors, domain.BatchError{Batch: batchNo, Size: len(batch), Error: err.Error()})
				continue
			}

			inserted, err := u.deps.Store.InsertArticles(ctx, batch)
			if err != nil {
				logger.Logger.ErrorContext(ctx, "Batch insert failed",
					"source_id", run.report.SourceID,
					"batch", batchNo,
					"size", len(batch),
					"error", err)
				d.Failed += len(batch)
				d.BatchErrors = append(d.BatchErrors, domain.BatchError{Batch: batchNo, Size: len(batch), Error: err.Error()})
				continue
			}
			d.Inserted += inserted
			// rows that lost an insert race to a concurrent writer
			d.Duplicates += len(batch) - inserted
		}
	}
}

// prepare turns a candidate into the article that will be stored.
func (u *IngestArticlesUsecase) prepare(c domain.CandidateArticle, now time.Time) domain.Article {
	cls := u.deps.Classifier.Classify(c)
	score := u.deps.Scorer.Score(c, cls.Tags).Total

	tags := cls.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.Article{
		ID:          uuid.NewString(),
		SourceID:    c.SourceID,
		SourceGUID:  strings.TrimSpace(c.GUID),
		Title:       strings.TrimSpace(c.Title),
		Description: strings.TrimSpace(c.Description),
		Content:     strings.TrimSpace(c.Content),
		SourceName:  c.SourceName,
		URL:         strings.TrimSpace(c.URL),
		ImageURL:    c.ImageURL,
		PublishedAt: c.PublishedAt.UTC(),
		Language:    c.Language,
		Category:    cls.Category,
		Tags:        tags,
		BaseScore:   &score,
		CreatedAt:   now,
	}
}
