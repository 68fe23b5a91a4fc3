package classify_usecase

import (
	"strings"
	"unicode"

	"news-pipeline/domain"
)

const (
	// minCategoryScore is the least evidence needed to leave "general".
	minCategoryScore = 2
	maxTags          = 12
)

type ClassifyUsecase struct {
	tagKeywords []string
}

func NewClassifyUsecase() *ClassifyUsecase {
	seen := make(map[string]struct{})
	var tags []string
	add := func(k string) {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			tags = append(tags, k)
		}
	}
	for _, c := range domain.Categories {
		for _, k := range categoryKeywords[c] {
			add(k)
		}
	}
	for _, k := range extraTagKeywords {
		add(k)
	}
	return &ClassifyUsecase{tagKeywords: tags}
}

// Classify assigns a category and tags. A category declared by the provider
// wins over the keyword vote; provider tags are kept ahead of derived ones.
func (u *ClassifyUsecase) Classify(c domain.CandidateArticle) domain.Classification {
	categoryText := strings.ToLower(c.Title + " " + c.Description)
	scores := ScoreCategories(categoryText)

	category := pickCategory(scores)
	if declared, ok := domain.ParseCategory(c.Category); ok && declared != domain.CategoryGeneral {
		category = declared
	}

	return domain.Classification{
		Category:       category,
		Tags:           u.tags(c),
		CategoryScores: scores,
	}
}

// ScoreCategories scores text, which must already be lower-case, against
// every category list. Each occurrence scores 1, or 2 on word boundaries.
func ScoreCategories(text string) map[domain.Category]int {
	scores := make(map[domain.Category]int, len(categoryKeywords))
	for _, category := range domain.Categories {
		total := 0
		for _, kw := range categoryKeywords[category] {
			total += keywordPoints(text, kw)
		}
		if total > 0 {
			scores[category] = total
		}
	}
	return scores
}

func pickCategory(scores map[domain.Category]int) domain.Category {
	best := domain.CategoryGeneral
	bestScore := 0
	// Strict comparison keeps the earliest category on ties.
	for _, category := range domain.Categories {
		if scores[category] > bestScore {
			best, bestScore = category, scores[category]
		}
	}
	if bestScore < minCategoryScore {
		return domain.CategoryGeneral
	}
	return best
}

func keywordPoints(text, kw string) int {
	points := 0
	for from := 0; from <= len(text)-len(kw); {
		i := strings.Index(text[from:], kw)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(kw)
		if isBoundary(text, start-1) && isBoundary(text, end) {
			points += 2
		} else {
			points++
		}
		from = end
	}
	return points
}

// isBoundary reports whether the byte at i is outside a word.
func isBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	b := text[i]
	return !(b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= 0x80)
}

// ContainsWord reports a whole-word occurrence of kw in lower-case text.
func ContainsWord(text, kw string) bool {
	for from := 0; from <= len(text)-len(kw); {
		i := strings.Index(text[from:], kw)
		if i < 0 {
			return false
		}
		start := from + i
		if isBoundary(text, start-1) && isBoundary(text, start+len(kw)) {
			return true
		}
		from = start + 1
	}
	return false
}

func (u *ClassifyUsecase) tags(c domain.CandidateArticle) []string {
	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || len(tags) >= maxTags {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, t := range c.Tags {
		add(t)
	}

	text := strings.ToLower(c.Title + " " + c.Description + " " + c.Content)
	for _, kw := range u.tagKeywords {
		if ContainsWord(text, kw) {
			add(kw)
		}
	}

	for _, noun := range properNouns(c.Title) {
		add(noun)
	}
	return tags
}

// properNouns returns capitalized title words that do not start a sentence.
func properNouns(title string) []string {
	var nouns []string
	words := strings.Fields(title)
	for i := 1; i < len(words); i++ {
		prev := words[i-1]
		if strings.ContainsAny(prev[len(prev)-1:], ".!?:") {
			continue
		}
		word := strings.TrimFunc(words[i], func(r rune) bool { return !unicode.IsLetter(r) })
		if len([]rune(word)) < 3 || !onlyLetters(word) {
			continue
		}
		first := []rune(word)[0]
		if !unicode.IsUpper(first) {
			continue
		}
		if _, stop := stopwords[strings.ToLower(word)]; stop {
			continue
		}
		nouns = append(nouns, word)
	}
	return nouns
}

func onlyLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
