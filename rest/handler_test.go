package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
)

var testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

type fakeReader struct {
	got  domain.ArticleFilter
	page *domain.ArticlePage
	err  error
}

func (f *fakeReader) GetArticles(_ context.Context, filter domain.ArticleFilter) (*domain.ArticlePage, error) {
	f.got = filter
	return f.page, f.err
}

type fakeRanker struct {
	userID string
	page   *domain.RankedArticlePage
	scored *domain.ScoredArticle
	err    error
}

func (f *fakeRanker) RankArticlesForUser(_ context.Context, userID string, _ domain.ArticleFilter) (*domain.RankedArticlePage, error) {
	f.userID = userID
	return f.page, f.err
}

func (f *fakeRanker) ExplainRelevance(_ context.Context, userID, _ string) (*domain.ScoredArticle, error) {
	f.userID = userID
	return f.scored, f.err
}

type fakeIngest struct {
	opts   domain.IngestOptions
	report *domain.IngestReport
	err    error
}

func (f *fakeIngest) Execute(_ context.Context, opts domain.IngestOptions) (*domain.IngestReport, error) {
	f.opts = opts
	return f.report, f.err
}

func (f *fakeIngest) Status() domain.IngestStatus {
	return domain.IngestStatus{Running: true, Breakers: []domain.BreakerState{{SourceID: "headlines", ConsecutiveFailures: 2}}}
}

func newServer(h *Handlers) *echo.Echo {
	h.now = func() time.Time { return testNow }
	e := echo.New()
	h.Register(e.Group("/v1"))
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestGetArticles(t *testing.T) {
	reader := &fakeReader{page: &domain.ArticlePage{
		Articles:   []domain.Article{{ID: "a1", Title: "Rates hold steady"}},
		TotalCount: 12,
	}}
	e := newServer(&Handlers{Articles: reader})

	rec, body := do(t, e, http.MethodGet, "/v1/articles?category=business&tags=rates,fed&tags=banks&q=hold&from=2026-05-01&sort=score&page=2&limit=5&minScore=40", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 12, body["totalCount"])
	assert.Len(t, body["articles"], 1)
	assert.Equal(t, "2026-05-04T12:00:00Z", body["timestamp"])
	assert.NotContains(t, body, "error")

	got := reader.got
	assert.Equal(t, "business", got.Category)
	assert.Equal(t, []string{"rates", "fed", "banks"}, got.Tags)
	assert.Equal(t, "hold", got.Search)
	require.NotNil(t, got.From)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), *got.From)
	assert.Equal(t, domain.SortScore, got.Sort)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 5, got.Limit)
	assert.Equal(t, 40, got.MinScore)
}

func TestGetArticles_RecoverableFailuresAnswer200(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		wantCode string
	}{
		{name: "bad integer", target: "/v1/articles?page=two", wantCode: "VALIDATION_ERROR"},
		{name: "bad date", target: "/v1/articles?from=yesterday", wantCode: "VALIDATION_ERROR"},
		{name: "store down", target: "/v1/articles", err: errors.New("connection refused"), wantCode: "UNKNOWN_ERROR"},
		{name: "invalid filter from usecase", target: "/v1/articles?category=x", err: domain.ErrInvalidFilter, wantCode: "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newServer(&Handlers{Articles: &fakeReader{err: tt.err}})

			rec, body := do(t, e, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []any{}, body["articles"])
			assert.EqualValues(t, 0, body["totalCount"])
			assert.NotEmpty(t, body["timestamp"])

			errBody, ok := body["error"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, errBody["code"])
		})
	}
}

func TestUserFeed(t *testing.T) {
	ranker := &fakeRanker{page: &domain.RankedArticlePage{
		Articles: []domain.ScoredArticle{{
			Article:   domain.Article{ID: "a1"},
			Relevance: domain.RelevanceBreakdown{Base: 10, Total: 55},
		}},
		TotalCount: 1,
	}}
	e := newServer(&Handlers{Ranker: ranker})

	rec, body := do(t, e, http.MethodGet, "/v1/users/u-42/feed?minScore=30", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-42", ranker.userID)
	articles := body["articles"].([]any)
	require.Len(t, articles, 1)
	relevance := articles[0].(map[string]any)["relevance"].(map[string]any)
	assert.EqualValues(t, 55, relevance["total"])
}

func TestExplainRelevance_NotFound(t *testing.T) {
	e := newServer(&Handlers{Ranker: &fakeRanker{err: domain.ErrArticleNotFound}})

	rec, body := do(t, e, http.MethodGet, "/v1/users/u1/articles/missing/relevance", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])
	assert.NotContains(t, body, "article")
}

func TestIngest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ingest := &fakeIngest{report: &domain.IngestReport{RunID: "r1", Status: domain.RunStatusSuccess}}
		e := newServer(&Handlers{Ingest: ingest})

		rec, body := do(t, e, http.MethodPost, "/v1/ingest", `{"forceUpdate":true,"singleCategory":true,"languages":["en","de"]}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.IngestOptions{ForceUpdate: true, SingleCategory: true, Languages: []string{"en", "de"}}, ingest.opts)
		assert.Equal(t, "r1", body["report"].(map[string]any)["run_id"])
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		ingest := &fakeIngest{report: &domain.IngestReport{RunID: "r2"}}
		e := newServer(&Handlers{Ingest: ingest})

		rec, _ := do(t, e, http.MethodPost, "/v1/ingest", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.IngestOptions{}, ingest.opts)
	})

	t.Run("overlapping run answers 200 with error", func(t *testing.T) {
		e := newServer(&Handlers{Ingest: &fakeIngest{err: domain.ErrIngestInProgress}})

		rec, body := do(t, e, http.MethodPost, "/v1/ingest", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "CONFLICT", body["error"].(map[string]any)["code"])
	})

	t.Run("total failure answers 500", func(t *testing.T) {
		report := &domain.IngestReport{RunID: "r3", Status: domain.RunStatusError}
		e := newServer(&Handlers{Ingest: &fakeIngest{report: report, err: domain.ErrNoSourcesHealthy}})

		rec, body := do(t, e, http.MethodPost, "/v1/ingest", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotEmpty(t, body["timestamp"])
		assert.Equal(t, "r3", body["report"].(map[string]any)["run_id"])
		assert.Contains(t, body, "error")
	})

	t.Run("malformed body", func(t *testing.T) {
		e := newServer(&Handlers{Ingest: &fakeIngest{}})

		rec, body := do(t, e, http.MethodPost, "/v1/ingest", `{"forceUpdate":`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", body["error"].(map[string]any)["code"])
	})
}

func TestIngestStatus(t *testing.T) {
	e := newServer(&Handlers{Ingest: &fakeIngest{}})

	rec, body := do(t, e, http.MethodGet, "/v1/ingest/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["running"])
	assert.Len(t, body["breakers"], 1)
	assert.Equal(t, "2026-05-04T12:00:00Z", body["timestamp"])
}

func TestHealth(t *testing.T) {
	e := newServer(&Handlers{Checks: map[string]HealthCheck{
		"database": func(context.Context) error { return nil },
		"cache":    func(context.Context) error { return errors.New("dial tcp: refused") },
	}})

	rec, body := do(t, e, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "degraded", body["status"])
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "ok", checks["database"])
	assert.Equal(t, "dial tcp: refused", checks["cache"])
}
