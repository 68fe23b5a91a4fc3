package rest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"news-pipeline/domain"
	"news-pipeline/metrics"
	"news-pipeline/middleware"
	"news-pipeline/utils/errors"
	"news-pipeline/utils/logger"
)

// errorBody enriches err with request context, logs it and converts it to
// the envelope error member.
func errorBody(c echo.Context, err error, operation string) *ErrorBody {
	appErr := errors.EnrichWithContext(
		errors.FromDomain(err, "usecase", "RESTHandler", operation),
		"rest",
		"RESTHandler",
		operation,
		map[string]any{
			"path":       c.Request().URL.Path,
			"method":     c.Request().Method,
			"request_id": c.Response().Header().Get(middleware.RequestIDHeader),
		},
	)

	ctx := c.Request().Context()
	logger.GlobalContext.WithContext(ctx).WarnContext(ctx, "REST handler error",
		"error", appErr.Error(),
		"error_code", appErr.Code,
		"operation", operation,
		"is_retryable", appErr.IsRetryable(),
	)
	metrics.RecordReadRequest(operation, "error")

	return &ErrorBody{
		Code:      appErr.Code,
		Message:   appErr.Message,
		Retryable: appErr.IsRetryable(),
	}
}

// parseArticleFilter reads the read API query parameters. Tags may be
// repeated or comma separated.
func parseArticleFilter(c echo.Context) (domain.ArticleFilter, error) {
	f := domain.ArticleFilter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Search:   c.QueryParam("q"),
		Sort:     domain.SortKey(strings.ToLower(c.QueryParam("sort"))),
	}
	if f.Search == "" {
		f.Search = c.QueryParam("search")
	}

	for _, raw := range c.QueryParams()["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}

	var err error
	if f.From, err = parseTimeParam(c, "from"); err != nil {
		return f, err
	}
	if f.To, err = parseTimeParam(c, "to"); err != nil {
		return f, err
	}
	if f.Page, err = parseIntParam(c, "page"); err != nil {
		return f, err
	}
	if f.Limit, err = parseIntParam(c, "limit"); err != nil {
		return f, err
	}
	if f.MinScore, err = parseIntParam(c, "minScore"); err != nil {
		return f, err
	}
	return f, nil
}

func parseIntParam(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidFilter, name)
	}
	return v, nil
}

// parseTimeParam accepts RFC 3339 timestamps and plain dates.
func parseTimeParam(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s must be RFC 3339 or YYYY-MM-DD", domain.ErrInvalidFilter, name)
}
