package domain

import (
	"encoding/json"
	"time"
)

// FetchParams are the per-run parameters handed to a source adapter.
type FetchParams struct {
	Languages      []string
	SingleCategory bool
}

// PayloadPage is one raw provider response. Label identifies what was asked
// for (a category, a feed URL, an extraction target).
type PayloadPage struct {
	Label    string          `json:"label"`
	Language string          `json:"language,omitempty"`
	Body     json.RawMessage `json:"body"`
}

// ProviderPayload is the raw, provider-shaped result of one fetch. It is
// cached verbatim and converted by the same adapter that produced it.
type ProviderPayload struct {
	SourceID  string        `json:"source_id"`
	FetchedAt time.Time     `json:"fetched_at"`
	Pages     []PayloadPage `json:"pages"`
}

// CandidateBatch is the output of converting a payload. Rejected counts raw
// items that failed validation and were not converted.
type CandidateBatch struct {
	Candidates []CandidateArticle
	Rejected   int
}
