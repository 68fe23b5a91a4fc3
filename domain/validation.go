package domain

import (
	"strings"
	"unicode/utf8"
)

// MinTitleLength is the minimum trimmed title length, in characters.
const MinTitleLength = 10

// ValidateCandidate reports the first rule a raw item breaks.
func ValidateCandidate(c CandidateArticle) error {
	if utf8.RuneCountInString(strings.TrimSpace(c.Title)) < MinTitleLength {
		return ErrTitleTooShort
	}
	if strings.TrimSpace(c.URL) == "" {
		return ErrMissingURL
	}
	if c.PublishedAt.IsZero() {
		return ErrMissingPubDate
	}
	if strings.TrimSpace(c.Content) == "" && strings.TrimSpace(c.Description) == "" {
		return ErrMissingBody
	}
	return nil
}

// IsValidArticle is the boolean form of ValidateCandidate.
func IsValidArticle(c CandidateArticle) bool {
	return ValidateCandidate(c) == nil
}
