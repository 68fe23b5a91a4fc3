package classify_usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"news-pipeline/domain"
)

func TestClassifyUsecase_Classify_Category(t *testing.T) {
	u := NewClassifyUsecase()

	tests := []struct {
		name        string
		title       string
		description string
		declared    string
		want        domain.Category
	}{
		{
			name:  "large language model twice",
			title: "A large language model outperforms the previous large language model",
			want:  domain.CategoryLLM,
		},
		{
			name:  "below minimum evidence",
			title: "Local bakery reopens its doors downtown",
			want:  domain.CategoryGeneral,
		},
		{
			name:        "crypto keywords",
			title:       "Bitcoin rallies as ETF demand grows",
			description: "Crypto traders cheered the move.",
			want:        domain.CategoryCrypto,
		},
		{
			name:  "tie favours the earlier category",
			title: "Robotics meets the stock",
			want:  domain.CategoryAI,
		},
		{
			name:     "provider category wins",
			title:    "Central bank raises rates again",
			declared: "crypto",
			want:     domain.CategoryCrypto,
		},
		{
			name:        "health",
			title:       "Vaccine trial shows promise for cancer patients",
			description: "Hospital doctors reported results.",
			want:        domain.CategoryHealth,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := u.Classify(domain.CandidateArticle{Title: tt.title, Description: tt.description, Category: tt.declared})
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestScoreCategories_Weighting(t *testing.T) {
	scores := ScoreCategories("llms and an llm")
	// "llm" inside "llms" is a partial match (1), the standalone one scores 2,
	// and "llms" itself scores 2.
	assert.Equal(t, 5, scores[domain.CategoryLLM])
}

func TestKeywordPoints(t *testing.T) {
	assert.Equal(t, 2, keywordPoints("bitcoin rises", "bitcoin"))
	assert.Equal(t, 1, keywordPoints("bitcoiners rejoice", "bitcoin"))
	assert.Equal(t, 4, keywordPoints("bitcoin, bitcoin", "bitcoin"))
	assert.Equal(t, 0, keywordPoints("ether", "bitcoin"))
}

func TestClassifyUsecase_Classify_Tags(t *testing.T) {
	u := NewClassifyUsecase()

	got := u.Classify(domain.CandidateArticle{
		Title:   "Regulators investigate Nvidia and Microsoft deal. Shares slip",
		Content: "The security review covers cloud contracts.",
		Tags:    []string{"BTC", "Market"},
	})

	assert.Equal(t, []string{"btc", "market", "microsoft", "cloud", "shares", "security", "nvidia"}, got.Tags)
	assert.NotContains(t, got.Tags, "regulators", "first word of the title is not a proper noun")
	assert.NotContains(t, got.Tags, "and")
}

func TestClassifyUsecase_Classify_TagCap(t *testing.T) {
	u := NewClassifyUsecase()

	got := u.Classify(domain.CandidateArticle{
		Title: "Apple Google Microsoft Nvidia Tesla Amazon Intel Meta Netflix Binance Coinbase Solana Ethereum",
	})
	assert.Len(t, got.Tags, maxTags)
}

func TestProperNouns(t *testing.T) {
	assert.Equal(t, []string{"Paris", "Olympics"}, properNouns("Crowds gather in Paris for the Olympics"))
	assert.Equal(t, []string{"Berlin"}, properNouns("Talks stall: Markets fall as Berlin waits"))
	assert.Empty(t, properNouns("Single"))
}
