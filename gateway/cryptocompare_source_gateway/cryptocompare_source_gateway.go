package cryptocompare_source_gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"news-pipeline/domain"
	"news-pipeline/driver/provider_client"
	"news-pipeline/gateway/source_common"
)

const SourceID = "cryptocompare"

type Config struct {
	BaseURL string
	APIKey  string
}

// CryptoCompareSourceGateway reads the general crypto news feed.
type CryptoCompareSourceGateway struct {
	client source_common.ProviderDoer
	config Config
	now    func() time.Time
}

func NewCryptoCompareSourceGateway(client source_common.ProviderDoer, cfg Config) *CryptoCompareSourceGateway {
	return &CryptoCompareSourceGateway{client: client, config: cfg, now: time.Now}
}

func (g *CryptoCompareSourceGateway) SourceID() string {
	return SourceID
}

// FetchBatch issues a single request; the feed is not split by language.
func (g *CryptoCompareSourceGateway) FetchBatch(ctx context.Context, params domain.FetchParams) (*domain.ProviderPayload, error) {
	langs := source_common.Languages(params, "en")

	req := provider_client.Request{
		URL:   strings.TrimRight(g.config.BaseURL, "/") + "/data/v2/news/",
		Query: map[string]string{"lang": strings.ToUpper(langs[0])},
	}
	if g.config.APIKey != "" {
		req.Headers = map[string]string{"Authorization": "Apikey " + g.config.APIKey}
	}

	body, err := g.client.Do(ctx, SourceID, req)
	if err != nil {
		return nil, fmt.Errorf("crypto news: %w", err)
	}

	return &domain.ProviderPayload{
		SourceID:  SourceID,
		FetchedAt: g.now().UTC(),
		Pages:     []domain.PayloadPage{{Label: "news", Language: langs[0], Body: body}},
	}, nil
}

type newsItem struct {
	ID          json.RawMessage `json:"id"`
	GUID        string          `json:"guid"`
	PublishedOn int64           `json:"published_on"`
	ImageURL    string          `json:"imageurl"`
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Body        string          `json:"body"`
	Tags        string          `json:"tags"`
	Categories  string          `json:"categories"`
	Lang        string          `json:"lang"`
	Source      string          `json:"source"`
	SourceInfo  struct {
		Name string `json:"name"`
	} `json:"source_info"`
}

func (g *CryptoCompareSourceGateway) ToCandidates(payload *domain.ProviderPayload) (*domain.CandidateBatch, error) {
	if err := source_common.CheckPayload(SourceID, payload); err != nil {
		return nil, err
	}

	collector := source_common.NewCollector(50)
	for _, page := range payload.Pages {
		items, err := source_common.DecodeArray(SourceID, page.Body, "Data")
		if err != nil {
			return nil, err
		}
		for _, raw := range items {
			var item newsItem
			if err := json.Unmarshal(raw, &item); err != nil {
				collector.Reject()
				continue
			}

			guid := strings.TrimSpace(item.GUID)
			if guid == "" {
				guid = source_common.ProviderID(item.ID)
			}
			var published time.Time
			if item.PublishedOn > 0 {
				published = time.Unix(item.PublishedOn, 0).UTC()
			}
			sourceName := item.SourceInfo.Name
			if sourceName == "" {
				sourceName = item.Source
			}

			collector.Add(domain.CandidateArticle{
				SourceID:    SourceID,
				Title:       item.Title,
				Content:     item.Body,
				SourceName:  sourceName,
				URL:         item.URL,
				ImageURL:    item.ImageURL,
				PublishedAt: published,
				GUID:        guid,
				Language:    strings.ToLower(item.Lang),
				Category:    string(domain.CategoryCrypto),
				Tags:        source_common.SplitTaxonomy(item.Categories, item.Tags),
			})
		}
	}
	return collector.Batch(), nil
}
