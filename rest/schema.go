package rest

import (
	"time"

	"news-pipeline/domain"
)

// ErrorBody is the error member of every response envelope.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

type ArticlesResponse struct {
	Articles   []domain.Article `json:"articles"`
	TotalCount int              `json:"totalCount"`
	Timestamp  time.Time        `json:"timestamp"`
	Error      *ErrorBody       `json:"error,omitempty"`
}

type RankedArticlesResponse struct {
	Articles   []domain.ScoredArticle `json:"articles"`
	TotalCount int                    `json:"totalCount"`
	Timestamp  time.Time              `json:"timestamp"`
	Error      *ErrorBody             `json:"error,omitempty"`
}

type RelevanceResponse struct {
	Article   *domain.ScoredArticle `json:"article,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
	Error     *ErrorBody            `json:"error,omitempty"`
}

type IngestResponse struct {
	Report    *domain.IngestReport `json:"report,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
	Error     *ErrorBody           `json:"error,omitempty"`
}

type IngestStatusResponse struct {
	domain.IngestStatus
	Timestamp time.Time `json:"timestamp"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
