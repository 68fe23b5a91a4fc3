package crawler_driver

import (
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// FeedItem is a feed entry flattened to the fields the crawler source uses.
type FeedItem struct {
	GUID        string    `json:"guid,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Link        string    `json:"link"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Author      string    `json:"author,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Language    string    `json:"language,omitempty"`
	FeedTitle   string    `json:"feed_title,omitempty"`
}

var textPolicy = bluemonday.StrictPolicy()

// StripHTML removes every tag and collapses whitespace.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(html.UnescapeString(textPolicy.Sanitize(s))), " ")
}

// ParseFeed parses an RSS, Atom or JSON feed and returns at most maxItems
// entries (maxItems <= 0 means all).
func ParseFeed(body []byte, maxItems int) ([]FeedItem, error) {
	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, err
	}

	items := feed.Items
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	lang := normalizeLanguage(feed.Language)
	out := make([]FeedItem, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		fi := FeedItem{
			GUID:        strings.TrimSpace(it.GUID),
			Title:       StripHTML(it.Title),
			Description: StripHTML(it.Description),
			Content:     StripHTML(it.Content),
			Link:        strings.TrimSpace(it.Link),
			ImageURL:    ExtractImageURL(it),
			Categories:  it.Categories,
			Language:    lang,
			FeedTitle:   strings.TrimSpace(feed.Title),
		}
		switch {
		case it.PublishedParsed != nil:
			fi.PublishedAt = it.PublishedParsed.UTC()
		case it.UpdatedParsed != nil:
			fi.PublishedAt = it.UpdatedParsed.UTC()
		}
		if len(it.Authors) > 0 && it.Authors[0] != nil {
			fi.Author = it.Authors[0].Name
		}
		out = append(out, fi)
	}
	return out, nil
}

// ExtractImageURL picks the best image of an item.
// Priority: Item.Image > media:thumbnail > media:content (medium=image) > image enclosure.
func ExtractImageURL(item *gofeed.Item) string {
	if item.Image != nil && isHTTPURL(item.Image.URL) {
		return item.Image.URL
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, thumb := range media["thumbnail"] {
			if u := thumb.Attrs["url"]; isHTTPURL(u) {
				return u
			}
		}
		for _, content := range media["content"] {
			if content.Attrs["medium"] == "image" && isHTTPURL(content.Attrs["url"]) {
				return content.Attrs["url"]
			}
		}
	}

	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && isHTTPURL(enc.URL) {
			return enc.URL
		}
	}
	return ""
}

func isHTTPURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// normalizeLanguage turns "en-US" into "en".
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
