package crawler_source_gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"news-pipeline/domain"
	"news-pipeline/driver/crawler_driver"
	"news-pipeline/driver/provider_client"
	"news-pipeline/gateway/source_common"
	"news-pipeline/utils/logger"
)

const SourceID = "crawler"

// minBodyLength is the shortest feed body that is not enriched.
const minBodyLength = 200

type Config struct {
	FeedURLs        []string
	MaxItemsPerFeed int
	EnrichContent   bool
}

// PageExtractor is implemented by crawler_driver.PageExtractor.
type PageExtractor interface {
	Allowed(ctx context.Context, pageURL string) bool
	Extract(ctx context.Context, pageURL string) (*crawler_driver.Page, error)
}

// CrawlerSourceGateway crawls the configured feeds. Enrichment happens at
// fetch time so the cached payload already holds page text.
type CrawlerSourceGateway struct {
	client    source_common.ProviderDoer
	extractor PageExtractor
	config    Config
	now       func() time.Time
}

func NewCrawlerSourceGateway(client source_common.ProviderDoer, extractor PageExtractor, cfg Config) *CrawlerSourceGateway {
	return &CrawlerSourceGateway{client: client, extractor: extractor, config: cfg, now: time.Now}
}

func (g *CrawlerSourceGateway) SourceID() string {
	return SourceID
}

type crawledPage struct {
	Items []crawler_driver.FeedItem `json:"items"`
}

// FetchBatch crawls every feed. A failing feed is skipped; the batch fails
// only when no feed could be read.
func (g *CrawlerSourceGateway) FetchBatch(ctx context.Context, _ domain.FetchParams) (*domain.ProviderPayload, error) {
	if len(g.config.FeedURLs) == 0 {
		return nil, &domain.MalformedPayloadError{SourceID: SourceID, Reason: "no feed urls configured"}
	}

	payload := &domain.ProviderPayload{SourceID: SourceID, FetchedAt: g.now().UTC()}
	var upstream, malformed []error
	for _, feedURL := range g.config.FeedURLs {
		items, err := g.crawlFeed(ctx, feedURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Logger.WarnContext(ctx, "Skipping feed", "feed_url", feedURL, "error", err)
			if errors.Is(err, domain.ErrMalformedPayload) {
				malformed = append(malformed, err)
			} else {
				upstream = append(upstream, err)
			}
			continue
		}

		body, err := json.Marshal(crawledPage{Items: items})
		if err != nil {
			return nil, fmt.Errorf("encode crawled feed: %w", err)
		}
		payload.Pages = append(payload.Pages, domain.PayloadPage{Label: feedURL, Body: body})
	}

	// The batch is malformed only when every feed was; any reachability
	// failure has to reach the breaker.
	if len(payload.Pages) == 0 {
		if len(upstream) > 0 {
			return nil, errors.Join(upstream...)
		}
		return nil, errors.Join(malformed...)
	}
	return payload, nil
}

func (g *CrawlerSourceGateway) crawlFeed(ctx context.Context, feedURL string) ([]crawler_driver.FeedItem, error) {
	body, err := g.client.Do(ctx, SourceID, provider_client.Request{
		URL:     feedURL,
		Headers: map[string]string{"Accept": "application/rss+xml, application/atom+xml, application/xml, text/xml"},
	})
	if err != nil {
		return nil, err
	}

	items, err := crawler_driver.ParseFeed(body, g.config.MaxItemsPerFeed)
	if err != nil {
		return nil, &domain.MalformedPayloadError{SourceID: SourceID, Reason: "unparseable feed " + feedURL, Cause: err}
	}

	if g.config.EnrichContent && g.extractor != nil {
		for i := range items {
			g.enrich(ctx, &items[i])
		}
	}
	return items, nil
}

func (g *CrawlerSourceGateway) enrich(ctx context.Context, item *crawler_driver.FeedItem) {
	if item.Link == "" || len(item.Content) >= minBodyLength {
		return
	}
	if !g.extractor.Allowed(ctx, item.Link) {
		logger.Logger.DebugContext(ctx, "Disallowed by robots.txt", "url", item.Link)
		return
	}

	page, err := g.extractor.Extract(ctx, item.Link)
	if err != nil {
		logger.Logger.DebugContext(ctx, "Page enrichment failed", "url", item.Link, "error", err)
		return
	}
	if len(page.Text) > len(item.Content) {
		item.Content = page.Text
	}
	if item.Description == "" {
		item.Description = page.Description
	}
	if item.ImageURL == "" {
		item.ImageURL = page.ImageURL
	}
	if item.Title == "" {
		item.Title = page.Title
	}
}

func (g *CrawlerSourceGateway) ToCandidates(payload *domain.ProviderPayload) (*domain.CandidateBatch, error) {
	if err := source_common.CheckPayload(SourceID, payload); err != nil {
		return nil, err
	}

	collector := source_common.NewCollector(len(payload.Pages) * max(g.config.MaxItemsPerFeed, 1))
	for _, page := range payload.Pages {
		var crawled crawledPage
		if err := json.Unmarshal(page.Body, &crawled); err != nil {
			return nil, &domain.MalformedPayloadError{SourceID: SourceID, Reason: "crawled page", Cause: err}
		}
		for _, item := range crawled.Items {
			sourceName := item.FeedTitle
			if sourceName == "" {
				sourceName = hostOf(page.Label)
			}
			collector.Add(domain.CandidateArticle{
				SourceID:    SourceID,
				Title:       item.Title,
				Description: item.Description,
				Content:     item.Content,
				SourceName:  sourceName,
				URL:         item.Link,
				ImageURL:    item.ImageURL,
				PublishedAt: item.PublishedAt,
				GUID:        item.GUID,
				Language:    item.Language,
				Tags:        source_common.SplitTaxonomy(item.Categories...),
			})
		}
	}
	return collector.Batch(), nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
