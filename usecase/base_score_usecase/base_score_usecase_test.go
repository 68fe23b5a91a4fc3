package base_score_usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"news-pipeline/domain"
	"news-pipeline/usecase/classify_usecase"
)

var testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func newTestScorer() *BaseScoreUsecase {
	return NewBaseScoreUsecase(func() time.Time { return testNow })
}

func bitcoinCandidate() domain.CandidateArticle {
	return domain.CandidateArticle{
		SourceID:    "cryptocompare",
		Title:       "Bitcoin Surges Past $100K Amid ETF Inflows",
		Content:     strings.Repeat("Spot demand for the asset kept climbing through the week. ", 11),
		SourceName:  "Daily Coin Wire",
		URL:         "https://example.com/btc",
		ImageURL:    "https://example.com/btc.jpg",
		PublishedAt: testNow.Add(-2 * time.Hour),
	}
}

func TestBaseScoreUsecase_BitcoinScenario_FewTags(t *testing.T) {
	got := newTestScorer().Score(bitcoinCandidate(), []string{"btc", "etf"})

	assert.Equal(t, 30, got.Recency)
	assert.Equal(t, 10, got.Completeness)
	assert.Equal(t, 5, got.Image)
	assert.Zero(t, got.TitleQuality)
	assert.Zero(t, got.TopicBoost)
	assert.Zero(t, got.Reputation)
	assert.Equal(t, 45, got.Total)
}

// Classified as ingestion does it, the Title Case headline yields proper-noun
// tags, so tag richness applies on top of the 45.
func TestBaseScoreUsecase_BitcoinScenario_ClassifiedTags(t *testing.T) {
	c := bitcoinCandidate()
	tags := classify_usecase.NewClassifyUsecase().Classify(c).Tags

	assert.Contains(t, tags, "bitcoin")
	assert.Contains(t, tags, "etf")
	assert.GreaterOrEqual(t, len(tags), 3)

	got := newTestScorer().Score(c, tags)
	assert.Equal(t, 10, got.TagRichness)
	assert.Zero(t, got.TopicBoost)
	assert.Equal(t, 55, got.Total)
}

func TestBaseScoreUsecase_Signals(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.CandidateArticle)
		tags   []string
		check  func(t *testing.T, b domain.BaseScoreBreakdown)
	}{
		{
			name:   "reputable source",
			mutate: func(c *domain.CandidateArticle) { c.SourceName = "Reuters UK" },
			check:  func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Equal(t, 15, b.Reputation) },
		},
		{
			name: "reputable domain behind an aggregator name",
			mutate: func(c *domain.CandidateArticle) {
				c.SourceName = "Google News"
				c.URL = "https://uk.reuters.com/markets/story-1"
			},
			check: func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Equal(t, 15, b.Reputation) },
		},
		{
			name:   "lookalike domain",
			mutate: func(c *domain.CandidateArticle) { c.URL = "https://reuters.com.example.net/story" },
			check:  func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Zero(t, b.Reputation) },
		},
		{
			name: "recency tiers",
			mutate: func(c *domain.CandidateArticle) {
				c.PublishedAt = testNow.Add(-30 * time.Hour)
			},
			check: func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Equal(t, 10, b.Recency) },
		},
		{
			name:   "old article",
			mutate: func(c *domain.CandidateArticle) { c.PublishedAt = testNow.Add(-100 * time.Hour) },
			check:  func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Zero(t, b.Recency) },
		},
		{
			name: "description completeness",
			mutate: func(c *domain.CandidateArticle) {
				c.Content = ""
				c.Description = strings.Repeat("a fairly long summary ", 6)
			},
			check: func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Equal(t, 5, b.Completeness) },
		},
		{
			name:   "short question title",
			mutate: func(c *domain.CandidateArticle) { c.Title = "Is the rally over?" },
			check:  func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Equal(t, -10, b.TitleQuality) },
		},
		{
			name:   "shouting title with ellipsis",
			mutate: func(c *domain.CandidateArticle) { c.Title = "MARKETS TUMBLE AS TRADERS PANIC..." },
			check:  func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Equal(t, -10, b.TitleQuality) },
		},
		{
			name:  "tag richness",
			tags:  []string{"btc", "etf", "market"},
			check: func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Equal(t, 10, b.TagRichness) },
		},
		{
			name: "high value phrase does not stack",
			mutate: func(c *domain.CandidateArticle) {
				c.Description = "A merger follows the acquisition and a lawsuit."
			},
			check: func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Equal(t, 15, b.TopicBoost) },
		},
		{
			name:   "phrase inside another word does not count",
			mutate: func(c *domain.CandidateArticle) { c.Description = "Shipping was recalled twice" },
			check:  func(t *testing.T, b domain.BaseScoreBreakdown) { assert.Zero(t, b.TopicBoost) },
		},
		{
			name: "provider seed shifts the total",
			mutate: func(c *domain.CandidateArticle) {
				seed := 70
				c.ScoreSeed = &seed
			},
			check: func(t *testing.T, b domain.BaseScoreBreakdown) {
				assert.Equal(t, 10, b.ProviderSignal)
				assert.Equal(t, 55, b.Total)
			},
		},
		{
			name: "negative provider seed lowers the total",
			mutate: func(c *domain.CandidateArticle) {
				seed := 30
				c.ScoreSeed = &seed
			},
			check: func(t *testing.T, b domain.BaseScoreBreakdown) {
				assert.Equal(t, -10, b.ProviderSignal)
				assert.Equal(t, 35, b.Total)
			},
		},
		{
			name: "no provider seed is neutral",
			check: func(t *testing.T, b domain.BaseScoreBreakdown) {
				assert.Zero(t, b.ProviderSignal)
				assert.Equal(t, 45, b.Total)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := bitcoinCandidate()
			if tt.mutate != nil {
				tt.mutate(&c)
			}
			tt.check(t, newTestScorer().Score(c, tt.tags))
		})
	}
}

func TestBaseScoreUsecase_Clamped(t *testing.T) {
	scorer := newTestScorer()

	low := domain.CandidateArticle{
		Title:       "WHY...?",
		Description: "short",
		PublishedAt: testNow.Add(-30 * 24 * time.Hour),
	}
	got := scorer.Score(low, nil)
	assert.Less(t, got.Raw, MinBaseScore)
	assert.Equal(t, MinBaseScore, got.Total)

	high := bitcoinCandidate()
	high.SourceName = "Bloomberg"
	high.Description = "Regulators cleared the merger."
	seed := 100
	high.ScoreSeed = &seed
	got = scorer.Score(high, []string{"a", "b", "c"})
	assert.Greater(t, got.Raw, MaxBaseScore)
	assert.Equal(t, MaxBaseScore, got.Total)
}
