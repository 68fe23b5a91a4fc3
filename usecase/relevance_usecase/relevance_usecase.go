package relevance_usecase

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"

	"news-pipeline/domain"
)

const (
	MinRelevance = 0
	MaxRelevance = 100
)

// Signal weights.
const (
	baseWeight            = 10
	titleKeywordWeight    = 15
	contentKeywordWeight  = 10
	categoryWeight        = 20
	sourceWeight          = 15
	languageMatchWeight   = 15
	languageMismatch      = -10
	tagMatchWeight        = 5
	tagRichnessWeight     = 5
	excludedTitleWeight   = -25
	excludedContentWeight = -15
)

type RelevanceUsecase struct {
	now func() time.Time
}

// NewRelevanceUsecase creates a scorer. A nil clock means time.Now.
func NewRelevanceUsecase(now func() time.Time) *RelevanceUsecase {
	if now == nil {
		now = time.Now
	}
	return &RelevanceUsecase{now: now}
}

// Score computes the personalized relevance of a for prefs. It has no side
// effects; every signal is kept in the breakdown.
func (u *RelevanceUsecase) Score(a domain.Article, prefs domain.UserPreference) domain.RelevanceBreakdown {
	b := domain.RelevanceBreakdown{Base: baseWeight}

	title := strings.ToLower(a.Title)
	body := a.Content
	if strings.TrimSpace(body) == "" {
		body = a.Description
	}
	body = strings.ToLower(body)

	keywords := normalize(prefs.Keywords)
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			b.TitleKeywords += titleKeywordWeight
		}
		if strings.Contains(body, kw) {
			b.ContentKeywords += contentKeywordWeight
		}
	}

	for _, c := range normalize(prefs.Categories) {
		if c == strings.ToLower(string(a.Category)) {
			b.Category = categoryWeight
			break
		}
	}

	sourceName := strings.ToLower(a.SourceName)
	sourceID := strings.ToLower(a.SourceID)
	for _, s := range normalize(prefs.Sources) {
		if s == sourceName || s == sourceID {
			b.Source = sourceWeight
			break
		}
	}

	b.Language = languageSignal(a.Language, prefs.Languages)

	for _, tag := range a.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(tag, kw) || strings.Contains(kw, tag) {
				b.TagMatches += tagMatchWeight
				break
			}
		}
	}
	if len(a.Tags) >= 3 {
		b.TagRichness = tagRichnessWeight
	}

	for _, kw := range normalize(prefs.ExcludedKeywords) {
		if strings.Contains(title, kw) {
			b.ExcludedTitle += excludedTitleWeight
		}
		if strings.Contains(body, kw) {
			b.ExcludedContent += excludedContentWeight
		}
	}

	b.Freshness = freshness(u.now().Sub(a.PublishedAt))

	b.Raw = b.Sum()
	b.Total = min(max(b.Raw, MinRelevance), MaxRelevance)
	return b
}

// Rank scores every article and orders them by score, then publish date
// (newest first), then ID.
func (u *RelevanceUsecase) Rank(articles []domain.Article, prefs domain.UserPreference) []domain.ScoredArticle {
	scored := make([]domain.ScoredArticle, 0, len(articles))
	for _, a := range articles {
		scored = append(scored, domain.ScoredArticle{Article: a, Relevance: u.Score(a, prefs)})
	}
	slices.SortFunc(scored, compareScored)
	return scored
}

func compareScored(x, y domain.ScoredArticle) int {
	if c := cmp.Compare(y.Relevance.Total, x.Relevance.Total); c != 0 {
		return c
	}
	if c := y.PublishedAt.Compare(x.PublishedAt); c != 0 {
		return c
	}
	return cmp.Compare(x.ID, y.ID)
}

func freshness(age time.Duration) int {
	switch {
	case age < 6*time.Hour:
		return 20
	case age < 48*time.Hour:
		return 10
	case age < 72*time.Hour:
		return 5
	default:
		return 0
	}
}

func languageSignal(articleLang string, preferred []string) int {
	articleLang = primarySubtag(articleLang)
	if articleLang == "" || len(preferred) == 0 {
		return 0
	}
	for _, l := range preferred {
		if primarySubtag(l) == articleLang {
			return languageMatchWeight
		}
	}
	return languageMismatch
}

// primarySubtag maps "en-US", "en_GB" and "EN" to "en". Deprecated codes
// are canonicalized, so "iw" and "he" compare equal.
func primarySubtag(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	if tag, err := language.Parse(lang); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			return base.String()
		}
	}
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

// normalize lower-cases, trims and drops empty entries.
func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
