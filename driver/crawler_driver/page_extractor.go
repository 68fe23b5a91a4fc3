package crawler_driver

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/temoto/robotstxt"

	"news-pipeline/utils/rate_limiter"
)

const maxPageBytes = 2 << 20

// Page is what the extractor recovers from an article page.
type Page struct {
	Title       string
	Description string
	Text        string
	ImageURL    string
}

// PageExtractor fetches article pages politely: robots.txt is honoured and
// requests to one host are spaced out. Failures here are best effort and
// never retried.
type PageExtractor struct {
	http      *resty.Client
	userAgent string
	limiter   *rate_limiter.HostRateLimiter

	mu     sync.Mutex
	robots map[string]*robotstxt.RobotsData
}

func NewPageExtractor(timeout time.Duration, userAgent string, hostInterval time.Duration) *PageExtractor {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/html,application/xhtml+xml")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &PageExtractor{
		http:      client,
		userAgent: userAgent,
		limiter:   rate_limiter.NewHostRateLimiter(hostInterval),
		robots:    make(map[string]*robotstxt.RobotsData),
	}
}

// Allowed reports whether robots.txt of the page host permits fetching it.
// An unreachable robots.txt allows everything.
func (e *PageExtractor) Allowed(ctx context.Context, pageURL string) bool {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return false
	}

	robots := e.robotsFor(ctx, u)
	if robots == nil {
		return true
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return robots.TestAgent(path, e.agentName())
}

func (e *PageExtractor) agentName() string {
	if e.userAgent == "" {
		return "*"
	}
	return strings.SplitN(e.userAgent, "/", 2)[0]
}

func (e *PageExtractor) robotsFor(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	host := u.Scheme + "://" + u.Host

	e.mu.Lock()
	cached, ok := e.robots[host]
	e.mu.Unlock()
	if ok {
		return cached
	}

	var data *robotstxt.RobotsData
	resp, err := e.http.R().SetContext(ctx).Get(host + "/robots.txt")
	if err == nil {
		data, err = robotstxt.FromStatusAndBytes(resp.StatusCode(), resp.Body())
		if err != nil {
			data = nil
		}
	}

	e.mu.Lock()
	e.robots[host] = data
	e.mu.Unlock()
	return data
}

// Extract downloads pageURL and returns its readable text and metadata.
func (e *PageExtractor) Extract(ctx context.Context, pageURL string) (*Page, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page url: %w", err)
	}
	if err := e.limiter.WaitForHost(ctx, pageURL); err != nil {
		return nil, err
	}

	resp, err := e.http.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch page: status %d", resp.StatusCode())
	}
	body := resp.Body()
	if len(body) > maxPageBytes {
		body = body[:maxPageBytes]
	}

	return ExtractPage(body, u)
}

// ExtractPage parses an HTML document. Open Graph metadata wins over the
// readability guess for title, description and image.
func ExtractPage(body []byte, pageURL *url.URL) (*Page, error) {
	page := &Page{}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	page.Title = metaContent(doc, `meta[property="og:title"]`)
	page.Description = metaContent(doc, `meta[property="og:description"]`, `meta[name="description"]`)
	if img := metaContent(doc, `meta[property="og:image"]`, `meta[name="twitter:image"]`); img != "" {
		page.ImageURL = resolveURL(pageURL, img)
	}

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err == nil {
		var text strings.Builder
		if err := article.RenderText(&text); err == nil {
			page.Text = strings.Join(strings.Fields(text.String()), " ")
		}
	}
	if page.Title == "" {
		page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	return page, nil
}

func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if val, ok := node.Attr("content"); ok && strings.TrimSpace(val) != "" {
				return strings.TrimSpace(val)
			}
		}
	}
	return ""
}

func resolveURL(base *url.URL, ref string) string {
	if base == nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(r).String()
}
