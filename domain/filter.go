package domain

import "time"

type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortScore  SortKey = "score"
	// SortRandom is served as identifier descending, not true randomness.
	SortRandom SortKey = "random"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ArticleFilter carries read API filters. Page is 1-based.
type ArticleFilter struct {
	Category string
	Tags     []string
	Search   string
	From     *time.Time
	To       *time.Time
	Sort     SortKey
	Page     int
	Limit    int
	MinScore int
}

// Normalize applies defaults and bounds.
func (f ArticleFilter) Normalize() ArticleFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	switch f.Sort {
	case SortNewest, SortOldest, SortScore, SortRandom:
	default:
		f.Sort = SortNewest
	}
	return f
}

// Offset returns the row offset for the current page.
func (f ArticleFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
