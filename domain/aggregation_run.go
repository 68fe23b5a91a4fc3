package domain

import "time"

type RunStatus string

const (
	RunStatusRunning        RunStatus = "running"
	RunStatusSuccess        RunStatus = "success"
	RunStatusPartialSuccess RunStatus = "partial_success"
	RunStatusError          RunStatus = "error"
	RunStatusSkipped        RunStatus = "skipped"
)

// EventTypeSourceIngest is the event type of per-source run records.
const EventTypeSourceIngest = "source_ingest"

// ErrorKind classifies why a source failed so operators can tell a
// rate-limited provider from a misconfigured one.
type ErrorKind string

const (
	ErrorKindNone        ErrorKind = ""
	ErrorKindTransient   ErrorKind = "transient"
	ErrorKindRateLimited ErrorKind = "rate_limited"
	ErrorKindAuth        ErrorKind = "auth"
	ErrorKindMalformed   ErrorKind = "malformed_payload"
	ErrorKindCircuitOpen ErrorKind = "circuit_open"
	ErrorKindPersistence ErrorKind = "persistence"
	ErrorKindPanic       ErrorKind = "panic"
)

// BatchError records one failed persistence batch.
type BatchError struct {
	Batch int    `json:"batch"`
	Size  int    `json:"size"`
	Error string `json:"error"`
}

// RunDetail is the structured payload of an Aggregation Run Record.
type RunDetail struct {
	Fetched     int          `json:"fetched"`
	Valid       int          `json:"valid"`
	Rejected    int          `json:"rejected"`
	Duplicates  int          `json:"duplicates"`
	Inserted    int          `json:"inserted"`
	Failed      int          `json:"failed"`
	FromCache   bool         `json:"from_cache"`
	ErrorKind   ErrorKind    `json:"error_kind,omitempty"`
	Error       string       `json:"error,omitempty"`
	RetryAfter  string       `json:"retry_after,omitempty"`
	BatchErrors []BatchError `json:"batch_errors,omitempty"`
	StartedAt   time.Time    `json:"started_at"`
	FinishedAt  time.Time    `json:"finished_at"`
	ForceUpdate bool         `json:"force_update"`
	Languages   []string     `json:"languages,omitempty"`
}

// AggregationRunRecord is an append-only log entry, one per source per run.
type AggregationRunRecord struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	SourceID  string    `json:"source_id"`
	EventType string    `json:"event_type"`
	Status    RunStatus `json:"status"`
	Detail    RunDetail `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
