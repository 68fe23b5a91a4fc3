package base_score_usecase

import (
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"

	"news-pipeline/domain"
	"news-pipeline/usecase/classify_usecase"
)

const (
	MinBaseScore = 10
	MaxBaseScore = 90

	neutralSeed = 50
)

type BaseScoreUsecase struct {
	now func() time.Time
}

// NewBaseScoreUsecase creates a scorer. A nil clock means time.Now.
func NewBaseScoreUsecase(now func() time.Time) *BaseScoreUsecase {
	if now == nil {
		now = time.Now
	}
	return &BaseScoreUsecase{now: now}
}

// Score computes the ingestion-time quality score of c. tags are the final
// tags the article will be stored with.
func (u *BaseScoreUsecase) Score(c domain.CandidateArticle, tags []string) domain.BaseScoreBreakdown {
	var b domain.BaseScoreBreakdown

	b.Recency = recency(u.now().Sub(c.PublishedAt))
	if isReputable(c.SourceName) || isReputableDomain(c.URL) {
		b.Reputation = 15
	}
	if strings.TrimSpace(c.ImageURL) != "" {
		b.Image = 5
	}
	b.Completeness = completeness(c)
	b.TitleQuality = titleQuality(c.Title)
	if len(tags) >= 3 {
		b.TagRichness = 10
	}
	if hasHighValuePhrase(c) {
		b.TopicBoost = 15
	}
	if c.ScoreSeed != nil {
		b.ProviderSignal = (*c.ScoreSeed - neutralSeed) / 2
	}

	b.Raw = b.Sum()
	b.Total = min(max(b.Raw, MinBaseScore), MaxBaseScore)
	return b
}

func recency(age time.Duration) int {
	switch {
	case age < 6*time.Hour:
		return 30
	case age < 24*time.Hour:
		return 20
	case age < 72*time.Hour:
		return 10
	default:
		return 0
	}
}

func isReputable(sourceName string) bool {
	name := strings.ToLower(sourceName)
	if name == "" {
		return false
	}
	for _, s := range reputableSources {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// isReputableDomain matches the registrable domain of rawURL, so
// "www.reuters.com" and "uk.reuters.com" both count as reuters.com.
func isReputableDomain(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return false
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname()))
	if err != nil {
		return false
	}
	_, ok := reputableDomains[registrable]
	return ok
}

func completeness(c domain.CandidateArticle) int {
	if utf8.RuneCountInString(strings.TrimSpace(c.Content)) > 500 {
		return 10
	}
	if utf8.RuneCountInString(strings.TrimSpace(c.Description)) > 100 {
		return 5
	}
	return 0
}

func titleQuality(title string) int {
	title = strings.TrimSpace(title)
	penalty := 0
	if utf8.RuneCountInString(title) < 30 {
		penalty -= 5
	}
	if strings.Contains(title, "...") || strings.Contains(title, "…") || isShouting(title) {
		penalty -= 10
	}
	if strings.HasSuffix(title, "?") {
		penalty -= 5
	}
	return penalty
}

// isShouting is true for titles with letters and no lower-case ones.
func isShouting(title string) bool {
	letters := false
	for _, r := range title {
		if !unicode.IsLetter(r) {
			continue
		}
		letters = true
		if unicode.IsLower(r) {
			return false
		}
	}
	return letters
}

func hasHighValuePhrase(c domain.CandidateArticle) bool {
	text := strings.ToLower(c.Title + " " + c.Description + " " + c.Content)
	for _, p := range highValuePhrases {
		if classify_usecase.ContainsWord(text, p) {
			return true
		}
	}
	return false
}
