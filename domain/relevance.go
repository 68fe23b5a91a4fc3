package domain

// RelevanceBreakdown holds every signal of the personalization score so the
// total can be explained and reproduced.
type RelevanceBreakdown struct {
	Base            int `json:"base"`
	TitleKeywords   int `json:"title_keywords"`
	ContentKeywords int `json:"content_keywords"`
	Category        int `json:"category"`
	Source          int `json:"source"`
	Language        int `json:"language"`
	TagMatches      int `json:"tag_matches"`
	TagRichness     int `json:"tag_richness"`
	ExcludedTitle   int `json:"excluded_title"`
	ExcludedContent int `json:"excluded_content"`
	Freshness       int `json:"freshness"`

	// Raw is the unclamped sum, Total the clamped score.
	Raw   int `json:"raw"`
	Total int `json:"total"`
}

// Sum adds up the individual signals.
func (b RelevanceBreakdown) Sum() int {
	return b.Base + b.TitleKeywords + b.ContentKeywords + b.Category + b.Source +
		b.Language + b.TagMatches + b.TagRichness + b.ExcludedTitle + b.ExcludedContent + b.Freshness
}

// BaseScoreBreakdown holds the ingestion-time quality signals.
type BaseScoreBreakdown struct {
	Recency        int `json:"recency"`
	Reputation     int `json:"reputation"`
	Image          int `json:"image"`
	Completeness   int `json:"completeness"`
	TitleQuality   int `json:"title_quality"`
	TagRichness    int `json:"tag_richness"`
	TopicBoost     int `json:"topic_boost"`
	ProviderSignal int `json:"provider_signal"`

	Raw   int `json:"raw"`
	Total int `json:"total"`
}

// Sum adds up the individual signals.
func (b BaseScoreBreakdown) Sum() int {
	return b.Recency + b.Reputation + b.Image + b.Completeness + b.TitleQuality +
		b.TagRichness + b.TopicBoost + b.ProviderSignal
}

// Classification is the classifier output for one candidate.
type Classification struct {
	Category       Category
	Tags           []string
	CategoryScores map[Category]int
}
