package domain

import "time"

// IngestOptions is the payload accepted by the orchestrator entry point.
type IngestOptions struct {
	ForceUpdate    bool     `json:"forceUpdate"`
	SingleCategory bool     `json:"singleCategory"`
	Languages      []string `json:"languages"`
}

// SourceReport summarizes one source within a run.
type SourceReport struct {
	SourceID string    `json:"source_id"`
	Status   RunStatus `json:"status"`
	Detail   RunDetail `json:"detail"`
}

// IngestReport is the structured result of one orchestrator run.
type IngestReport struct {
	RunID      string         `json:"run_id"`
	Status     RunStatus      `json:"status"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Sources    []SourceReport `json:"sources"`
	Inserted   int            `json:"inserted"`
	Failed     int            `json:"failed"`
}

// BreakerState is the per-source circuit breaker snapshot.
type BreakerState struct {
	SourceID            string     `json:"source_id"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	TrippedAt           *time.Time `json:"tripped_at,omitempty"`
	RateLimitedUntil    *time.Time `json:"rate_limited_until,omitempty"`
}

// IngestStatus is the in-memory view served by the status endpoint. Current
// is set only while a run is in flight; its sources report RunStatusRunning
// until they finish.
type IngestStatus struct {
	Running  bool           `json:"running"`
	Current  *IngestReport  `json:"current,omitempty"`
	LastRun  *IngestReport  `json:"last_run,omitempty"`
	Breakers []BreakerState `json:"breakers"`
}
