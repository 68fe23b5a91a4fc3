// Package source_common holds helpers shared by the source gateways.
package source_common

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"news-pipeline/domain"
	"news-pipeline/driver/provider_client"
)

// ProviderDoer executes one upstream request under the retry policy.
type ProviderDoer interface {
	Do(ctx context.Context, sourceID string, req provider_client.Request) ([]byte, error)
}

// Collector accumulates validated candidates and counts rejects.
type Collector struct {
	batch domain.CandidateBatch
}

func NewCollector(capacity int) *Collector {
	return &Collector{batch: domain.CandidateBatch{Candidates: make([]domain.CandidateArticle, 0, capacity)}}
}

// Add keeps c when it passes validation.
func (c *Collector) Add(candidate domain.CandidateArticle) {
	candidate.Title = strings.TrimSpace(candidate.Title)
	candidate.URL = strings.TrimSpace(candidate.URL)
	candidate.Description = strings.TrimSpace(candidate.Description)
	candidate.Content = strings.TrimSpace(candidate.Content)
	if !domain.IsValidArticle(candidate) {
		c.batch.Rejected++
		return
	}
	c.batch.Candidates = append(c.batch.Candidates, candidate)
}

// Reject counts an item that could not even be decoded.
func (c *Collector) Reject() {
	c.batch.Rejected++
}

func (c *Collector) Batch() *domain.CandidateBatch {
	return &c.batch
}

// CheckPayload guards the common preconditions of ToCandidates.
func CheckPayload(sourceID string, payload *domain.ProviderPayload) error {
	if payload == nil {
		return &domain.MalformedPayloadError{SourceID: sourceID, Reason: "nil payload"}
	}
	if payload.SourceID != "" && payload.SourceID != sourceID {
		return &domain.MalformedPayloadError{SourceID: sourceID, Reason: "payload belongs to " + payload.SourceID}
	}
	return nil
}

// DecodeArray extracts the JSON array stored at field of body. A missing or
// non-array field is a malformed payload.
func DecodeArray(sourceID string, body json.RawMessage, field string) ([]json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.MalformedPayloadError{SourceID: sourceID, Reason: "response is not a JSON object", Cause: err}
	}

	raw, ok := envelope[field]
	if !ok {
		return nil, &domain.MalformedPayloadError{SourceID: sourceID, Reason: "missing " + field + " array"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, &domain.MalformedPayloadError{SourceID: sourceID, Reason: field + " is not an array", Cause: err}
	}
	return items, nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// ProviderID reads a provider id that may be a JSON number or string. null,
// absent and blank ids yield "", so the candidate falls back to its URL.
func ProviderID(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return ""
	}
	switch id := v.(type) {
	case json.Number:
		return id.String()
	case string:
		return strings.TrimSpace(id)
	default:
		return ""
	}
}

// ParseTime accepts the timestamp formats seen across providers, including
// unix seconds. The zero time means unparseable.
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC()
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// SplitTaxonomy splits a "|"-separated provider taxonomy into lower-case tags.
func SplitTaxonomy(values ...string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, v := range values {
		for _, part := range strings.Split(v, "|") {
			tag := strings.ToLower(strings.TrimSpace(part))
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// Languages returns the requested languages or fallback when none are set.
func Languages(params domain.FetchParams, fallback ...string) []string {
	var out []string
	for _, l := range params.Languages {
		if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
