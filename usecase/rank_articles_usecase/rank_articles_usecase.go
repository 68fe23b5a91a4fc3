package rank_articles_usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"news-pipeline/domain"
	"news-pipeline/port/article_query_port"
	"news-pipeline/port/user_preference_port"
	"news-pipeline/usecase/fetch_articles_usecase"
	"news-pipeline/usecase/relevance_usecase"
	"news-pipeline/utils/logger"
)

// DefaultWindow is how many of the most recent matching articles are scored.
const DefaultWindow = 300

// windowLoadTimeout bounds a shared window load, which outlives the caller
// that started it.
const windowLoadTimeout = 15 * time.Second

type RankArticlesUsecase struct {
	articleQuery article_query_port.ArticleQueryPort
	preferences  user_preference_port.UserPreferencePort
	scorer       *relevance_usecase.RelevanceUsecase
	window       int
	loadTimeout  time.Duration

	// windows coalesces concurrent loads of the same candidate window.
	windows singleflight.Group
}

func NewRankArticlesUsecase(
	articleQuery article_query_port.ArticleQueryPort,
	preferences user_preference_port.UserPreferencePort,
	scorer *relevance_usecase.RelevanceUsecase,
	window int,
) *RankArticlesUsecase {
	if window <= 0 {
		window = DefaultWindow
	}
	return &RankArticlesUsecase{
		articleQuery: articleQuery,
		preferences:  preferences,
		scorer:       scorer,
		window:       window,
		loadTimeout:  windowLoadTimeout,
	}
}

// RankArticlesForUser scores the candidate window against the user's
// preferences and returns one page of the ranking. filter.MinScore applies
// to the relevance total.
func (u *RankArticlesUsecase) RankArticlesForUser(ctx context.Context, userID string, filter domain.ArticleFilter) (*domain.RankedArticlePage, error) {
	ctx = logger.WithUserID(ctx, userID)
	if err := fetch_articles_usecase.ValidateFilter(filter); err != nil {
		return nil, err
	}
	filter = filter.Normalize()

	prefs, err := u.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := u.loadWindow(ctx, filter)
	if err != nil {
		return nil, err
	}

	ranked := u.scorer.Rank(candidates, *prefs)
	if filter.MinScore > 0 {
		kept := ranked[:0]
		for _, a := range ranked {
			if a.Relevance.Total >= filter.MinScore {
				kept = append(kept, a)
			}
		}
		ranked = kept
	}

	total := len(ranked)
	start := min(filter.Offset(), total)
	end := min(start+filter.Limit, total)
	page := make([]domain.ScoredArticle, end-start)
	copy(page, ranked[start:end])

	logger.GlobalContext.WithContext(ctx).InfoContext(ctx, "Ranked articles for user",
		"window", len(candidates),
		"total", total,
		"page", filter.Page)
	return &domain.RankedArticlePage{Articles: page, TotalCount: total}, nil
}

// ExplainRelevance returns one article with its relevance breakdown for userID.
func (u *RankArticlesUsecase) ExplainRelevance(ctx context.Context, userID, articleID string) (*domain.ScoredArticle, error) {
	ctx = logger.WithUserID(ctx, userID)

	article, err := u.articleQuery.FetchArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	prefs, err := u.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.ScoredArticle{Article: *article, Relevance: u.scorer.Score(*article, *prefs)}, nil
}

// loadPreferences falls back to neutral preferences for unknown users.
func (u *RankArticlesUsecase) loadPreferences(ctx context.Context, userID string) (*domain.UserPreference, error) {
	prefs, err := u.preferences.FetchUserPreference(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrPrefsNotFound):
		logger.Logger.InfoContext(ctx, "No preferences stored, ranking with neutral preferences", "user_id", userID)
		return &domain.UserPreference{UserID: userID}, nil
	case err != nil:
		return nil, fmt.Errorf("load preferences: %w", err)
	case prefs == nil:
		return &domain.UserPreference{UserID: userID}, nil
	}
	return prefs, nil
}

// loadWindow reads the newest window articles matching filter, page by page.
func (u *RankArticlesUsecase) loadWindow(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	q := filter
	q.Sort = domain.SortNewest
	q.MinScore = 0
	q.Limit = domain.MaxPageLimit

	// The load runs detached so one caller giving up does not fail the
	// others waiting on the same key; each caller still honors its own ctx.
	ch := u.windows.DoChan(windowKey(q, u.window), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.loadTimeout)
		defer cancel()

		out := make([]domain.Article, 0, u.window)
		for q.Page = 1; len(out) < u.window; q.Page++ {
			articles, _, err := u.articleQuery.QueryArticles(loadCtx, q)
			if err != nil {
				return nil, err
			}
			out = append(out, articles[:min(len(articles), u.window-len(out))]...)
			if len(articles) < q.Limit {
				break
			}
		}
		return out, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	// callers sharing a result must not reorder each other's slice
	shared := res.Val.([]domain.Article)
	return append([]domain.Article(nil), shared...), nil
}

func windowKey(f domain.ArticleFilter, window int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|%s|%s", window, strings.ToLower(f.Category), strings.Join(f.Tags, ","), f.Search)
	for _, t := range []*time.Time{f.From, f.To} {
		b.WriteByte('|')
		if t != nil {
			b.WriteString(t.UTC().Format(time.RFC3339Nano))
		}
	}
	return b.String()
}
