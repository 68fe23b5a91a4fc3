package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"news-pipeline/domain"
	"news-pipeline/metrics"
)

// handleGetArticles serves GET /v1/articles. Failures are reported in the
// envelope with status 200 and an empty list.
func (h *Handlers) handleGetArticles(c echo.Context) error {
	resp := ArticlesResponse{Articles: []domain.Article{}, Timestamp: h.timestamp()}

	filter, err := parseArticleFilter(c)
	if err != nil {
		resp.Error = errorBody(c, err, "get_articles")
		return c.JSON(http.StatusOK, resp)
	}

	page, err := h.Articles.GetArticles(c.Request().Context(), filter)
	if err != nil {
		resp.Error = errorBody(c, err, "get_articles")
		return c.JSON(http.StatusOK, resp)
	}

	resp.Articles = page.Articles
	resp.TotalCount = page.TotalCount
	metrics.RecordReadRequest("get_articles", "ok")
	return c.JSON(http.StatusOK, resp)
}

// handleUserFeed serves GET /v1/users/:userId/feed.
func (h *Handlers) handleUserFeed(c echo.Context) error {
	resp := RankedArticlesResponse{Articles: []domain.ScoredArticle{}, Timestamp: h.timestamp()}

	userID := strings.TrimSpace(c.Param("userId"))
	filter, err := parseArticleFilter(c)
	if err == nil && userID == "" {
		err = domain.ErrInvalidFilter
	}
	if err != nil {
		resp.Error = errorBody(c, err, "rank_articles")
		return c.JSON(http.StatusOK, resp)
	}

	page, err := h.Ranker.RankArticlesForUser(c.Request().Context(), userID, filter)
	if err != nil {
		resp.Error = errorBody(c, err, "rank_articles")
		return c.JSON(http.StatusOK, resp)
	}

	resp.Articles = page.Articles
	resp.TotalCount = page.TotalCount
	metrics.RecordReadRequest("rank_articles", "ok")
	return c.JSON(http.StatusOK, resp)
}

// handleExplainRelevance serves GET /v1/users/:userId/articles/:articleId/relevance.
func (h *Handlers) handleExplainRelevance(c echo.Context) error {
	resp := RelevanceResponse{Timestamp: h.timestamp()}

	scored, err := h.Ranker.ExplainRelevance(c.Request().Context(), c.Param("userId"), c.Param("articleId"))
	if err != nil {
		resp.Error = errorBody(c, err, "explain_relevance")
		return c.JSON(http.StatusOK, resp)
	}

	resp.Article = scored
	metrics.RecordReadRequest("explain_relevance", "ok")
	return c.JSON(http.StatusOK, resp)
}
