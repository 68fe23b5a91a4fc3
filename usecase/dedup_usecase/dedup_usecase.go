package dedup_usecase

import (
	"context"

	"news-pipeline/domain"
	"news-pipeline/port/article_store_port"
	"news-pipeline/utils/logger"
)

// RecentKeysFallback is how many stored keys are consulted when the bounded
// existence query fails.
const RecentKeysFallback = 500

// Result reports what Filter dropped.
type Result struct {
	Fresh      []domain.CandidateArticle
	Duplicates int
	// Degraded is set when the recent-keys fallback was used.
	Degraded bool
}

type DedupUsecase struct {
	store article_store_port.ArticleStorePort
}

func NewDedupUsecase(store article_store_port.ArticleStorePort) *DedupUsecase {
	return &DedupUsecase{store: store}
}

// FilterNew drops candidates whose key is already in existing and keeps only
// the first occurrence of a key within candidates. Order is preserved.
func FilterNew(candidates []domain.CandidateArticle, existing map[string]struct{}) []domain.CandidateArticle {
	seen := make(map[string]struct{}, len(candidates))
	fresh := make([]domain.CandidateArticle, 0, len(candidates))
	for _, c := range candidates {
		key := c.DedupKey()
		if key == "" {
			continue
		}
		if _, ok := existing[key]; ok {
			continue
		}
		// A GUID-keyed candidate is also a duplicate of a stored row with the same URL.
		if c.GUID != "" {
			if _, ok := existing[c.Key().URL]; ok {
				continue
			}
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		fresh = append(fresh, c)
	}
	return fresh
}

// Filter loads the existing keys for candidates and applies FilterNew. When
// the bounded lookup fails it falls back to the most recent stored keys.
func (u *DedupUsecase) Filter(ctx context.Context, candidates []domain.CandidateArticle) (Result, error) {
	if len(candidates) == 0 {
		return Result{}, nil
	}

	keys := make([]domain.ArticleKey, 0, len(candidates))
	for _, c := range candidates {
		keys = append(keys, c.Key())
	}

	degraded := false
	existing, err := u.store.ExistingKeys(ctx, keys)
	if err != nil {
		logger.Logger.WarnContext(ctx, "Existence query failed, using recent keys", "error", err, "candidates", len(candidates))
		degraded = true
		existing, err = u.store.RecentKeys(ctx, RecentKeysFallback)
		if err != nil {
			return Result{}, err
		}
	}

	fresh := FilterNew(candidates, existing)
	return Result{
		Fresh:      fresh,
		Duplicates: len(candidates) - len(fresh),
		Degraded:   degraded,
	}, nil
}
