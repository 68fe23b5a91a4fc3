package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"news-pipeline/domain"
)

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeRateLimit   = "RATE_LIMIT_ERROR"
	CodeCircuitOpen = "CIRCUIT_OPEN"
	CodeExternalAPI = "EXTERNAL_API_ERROR"
	CodeAuth        = "UPSTREAM_AUTH_ERROR"
	CodeMalformed   = "MALFORMED_PAYLOAD"
	CodeTimeout     = "TIMEOUT_ERROR"
	CodeDatabase    = "DATABASE_ERROR"
	CodeConflict    = "CONFLICT"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// AppContextError represents an error with rich context information
type AppContextError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`
	Component string         `json:"component,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Cause     error          `json:"-"`
	Context   map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimit, CodeCircuitOpen:
		return http.StatusTooManyRequests
	case CodeExternalAPI, CodeAuth, CodeMalformed:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryable determines if the error represents a retryable condition
func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeRateLimit, CodeTimeout, CodeExternalAPI, CodeCircuitOpen:
		return true
	default:
		return false
	}
}

func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]any,
) *AppContextError {
	if context == nil {
		context = make(map[string]any)
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext copies err into a new layer, merging context maps.
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]any,
) *AppContextError {
	merged := make(map[string]any, len(err.Context)+len(additionalContext))
	for k, v := range err.Context {
		merged[k] = v
	}
	for k, v := range additionalContext {
		merged[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   merged,
	}
}

func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeDatabase, message, layer, component, operation, cause, context)
}

func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeUnknown, message, layer, component, operation, cause, context)
}

// FromDomain wraps a domain error into an AppContextError with the closest code.
// AppContextErrors pass through unchanged.
func FromDomain(err error, layer, component, operation string) *AppContextError {
	var appErr *AppContextError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var (
		circuit  *domain.CircuitOpenError
		upstream *domain.UpstreamError
		ctx      = map[string]any{}
	)
	switch {
	case stderrors.Is(err, domain.ErrInvalidFilter):
		return NewAppContextError(CodeValidation, err.Error(), layer, component, operation, err, ctx)
	case stderrors.Is(err, domain.ErrArticleNotFound):
		return NewAppContextError(CodeNotFound, "article not found", layer, component, operation, err, ctx)
	case stderrors.Is(err, domain.ErrIngestInProgress):
		return NewAppContextError(CodeConflict, "ingestion already in progress", layer, component, operation, err, ctx)
	case stderrors.As(err, &circuit):
		ctx["retry_after_seconds"] = int(circuit.RetryAfter.Seconds())
		return NewAppContextError(CodeCircuitOpen, "source temporarily disabled", layer, component, operation, err, ctx)
	case stderrors.Is(err, domain.ErrMalformedPayload):
		return NewAppContextError(CodeMalformed, "provider returned an unexpected payload", layer, component, operation, err, ctx)
	case stderrors.As(err, &upstream):
		ctx["status_code"] = upstream.StatusCode
		switch upstream.Kind {
		case domain.ErrorKindAuth:
			return NewAppContextError(CodeAuth, "provider rejected credentials", layer, component, operation, err, ctx)
		case domain.ErrorKindRateLimited:
			return NewAppContextError(CodeRateLimit, "provider rate limit exceeded", layer, component, operation, err, ctx)
		}
		return NewAppContextError(CodeExternalAPI, "provider unavailable", layer, component, operation, err, ctx)
	case stderrors.Is(err, domain.ErrPersistence):
		return NewDatabaseContextError("storage unavailable", layer, component, operation, err, ctx)
	}
	return NewUnknownContextError("internal error", layer, component, operation, err, ctx)
}
