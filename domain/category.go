package domain

import "strings"

type Category string

const (
	CategoryLLM           Category = "llm"
	CategoryAI            Category = "ai"
	CategoryCrypto        Category = "crypto"
	CategoryTechnology    Category = "technology"
	CategoryBusiness      Category = "business"
	CategoryScience       Category = "science"
	CategoryHealth        Category = "health"
	CategoryPolitics      Category = "politics"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
	CategoryGeneral       Category = "general"
)

// Categories lists every category in enumeration order. Classification ties
// are resolved in favour of the earlier entry.
var Categories = []Category{
	CategoryLLM,
	CategoryAI,
	CategoryCrypto,
	CategoryTechnology,
	CategoryBusiness,
	CategoryScience,
	CategoryHealth,
	CategoryPolitics,
	CategorySports,
	CategoryEntertainment,
	CategoryGeneral,
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory returns the matching category and whether it is known.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return CategoryGeneral, false
}
