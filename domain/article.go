package domain

import (
	"strings"
	"time"
)

// CandidateArticle is a provider-shaped article before canonicalization.
type CandidateArticle struct {
	SourceID    string
	Title       string
	Description string
	Content     string
	SourceName  string
	URL         string
	ImageURL    string
	PublishedAt time.Time
	GUID        string
	Language    string

	// Category declared by the provider, empty when the classifier decides.
	Category string
	// Tags taken from the provider taxonomy.
	Tags []string
	// ScoreSeed is a provider-derived quality hint (e.g. vote balance).
	ScoreSeed *int
}

// DedupKey identifies a candidate across runs: source GUID when present, URL otherwise.
func (c CandidateArticle) DedupKey() string {
	return DedupKey(c.SourceID, c.GUID, c.URL)
}

// Key returns the lookup fields used by existence checks.
func (c CandidateArticle) Key() ArticleKey {
	return ArticleKey{SourceID: c.SourceID, GUID: strings.TrimSpace(c.GUID), URL: strings.TrimSpace(c.URL)}
}

// ArticleKey is the identity of an article for duplicate detection.
type ArticleKey struct {
	SourceID string
	GUID     string
	URL      string
}

func (k ArticleKey) String() string {
	return DedupKey(k.SourceID, k.GUID, k.URL)
}

// DedupKey builds the key used for duplicate detection.
func DedupKey(sourceID, guid, url string) string {
	if guid = strings.TrimSpace(guid); guid != "" {
		return sourceID + ":" + guid
	}
	return strings.TrimSpace(url)
}

// Article is the canonical, persisted article record.
type Article struct {
	ID          string    `json:"id"`
	SourceID    string    `json:"source_id"`
	SourceGUID  string    `json:"source_guid,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	SourceName  string    `json:"source_name"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Language    string    `json:"language,omitempty"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags"`
	BaseScore   *int      `json:"base_score,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DedupKey mirrors CandidateArticle.DedupKey for stored rows.
func (a Article) DedupKey() string {
	return DedupKey(a.SourceID, a.SourceGUID, a.URL)
}

// ScoredArticle is an article with its read-time relevance overlay.
// The overlay is never persisted.
type ScoredArticle struct {
	Article
	Relevance RelevanceBreakdown `json:"relevance"`
}

// ArticlePage is the result shape of the read API.
type ArticlePage struct {
	Articles   []Article `json:"articles"`
	TotalCount int       `json:"totalCount"`
}

// RankedArticlePage is the personalized variant of ArticlePage.
type RankedArticlePage struct {
	Articles   []ScoredArticle `json:"articles"`
	TotalCount int             `json:"totalCount"`
}
