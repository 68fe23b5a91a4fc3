package domain

// UserPreference is owned by the settings UI and read-only here.
type UserPreference struct {
	UserID           string   `json:"user_id"`
	Keywords         []string `json:"keywords"`
	ExcludedKeywords []string `json:"excluded_keywords"`
	Categories       []string `json:"categories"`
	Sources          []string `json:"sources"`
	Languages        []string `json:"languages"`
}
