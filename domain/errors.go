package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// upstream providers
	ErrMalformedPayload    = errors.New("malformed provider payload")
	ErrCircuitOpen         = errors.New("circuit open")
	ErrUpstreamAuth        = errors.New("upstream rejected credentials")
	ErrUpstreamRateLimited = errors.New("upstream rate limited")
	ErrUpstreamTransient   = errors.New("upstream transient failure")

	// candidates
	ErrTitleTooShort  = errors.New("title shorter than 10 characters")
	ErrMissingURL     = errors.New("url is required")
	ErrMissingPubDate = errors.New("published timestamp is required")
	ErrMissingBody    = errors.New("content or description is required")

	// storage and reads
	ErrPersistence      = errors.New("persistence failure")
	ErrArticleNotFound  = errors.New("article not found")
	ErrPrefsNotFound    = errors.New("user preferences not found")
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrIngestInProgress = errors.New("ingestion already in progress")
	ErrNoSourcesHealthy = errors.New("every source failed")
)

// UpstreamError is an HTTP or network failure talking to a provider.
type UpstreamError struct {
	SourceID   string
	StatusCode int
	Kind       ErrorKind
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: upstream status %d (%s)", e.SourceID, e.StatusCode, e.Kind)
	}
	return fmt.Sprintf("%s: upstream %s: %v", e.SourceID, e.Kind, e.Cause)
}

func (e *UpstreamError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case ErrorKindAuth:
		sentinel = ErrUpstreamAuth
	case ErrorKindRateLimited:
		sentinel = ErrUpstreamRateLimited
	default:
		sentinel = ErrUpstreamTransient
	}
	if e.Cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Cause}
}

// NewUpstreamStatusError maps an HTTP status to an UpstreamError.
func NewUpstreamStatusError(sourceID string, status int) *UpstreamError {
	kind := ErrorKindTransient
	switch status {
	case 401:
		kind = ErrorKindAuth
	case 429:
		kind = ErrorKindRateLimited
	}
	return &UpstreamError{SourceID: sourceID, StatusCode: status, Kind: kind}
}

// MalformedPayloadError is a schema violation in a provider response. It is
// a data problem: never retried and never counted against the breaker.
type MalformedPayloadError struct {
	SourceID string
	Reason   string
	Cause    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: malformed payload: %s: %v", e.SourceID, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: malformed payload: %s", e.SourceID, e.Reason)
}

func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Cause
}

// CircuitOpenError is returned without a network attempt while a source's
// breaker is open.
type CircuitOpenError struct {
	SourceID   string
	RetryAfter time.Duration
}

func (e *CircuitOpenError) Error() string {
	return fmt.Sprintf("%s: circuit open, retry after %s", e.SourceID, e.RetryAfter.Round(time.Second))
}

func (e *CircuitOpenError) Is(target error) bool {
	return target == ErrCircuitOpen
}

// KindOf classifies an error for run records and metrics.
func KindOf(err error) ErrorKind {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrCircuitOpen):
		return ErrorKindCircuitOpen
	case errors.Is(err, ErrMalformedPayload):
		return ErrorKindMalformed
	case errors.As(err, &upstream):
		return upstream.Kind
	case errors.Is(err, ErrPersistence):
		return ErrorKindPersistence
	default:
		return ErrorKindTransient
	}
}
