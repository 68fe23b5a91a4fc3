package headlines_source_gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"news-pipeline/domain"
	"news-pipeline/driver/provider_client"
	"news-pipeline/gateway/source_common"
	"news-pipeline/utils/logger"
)

const SourceID = "headlines"

// Config mirrors config.HeadlinesConfig.
type Config struct {
	BaseURL    string
	APIKey     string
	Categories []string
	PageSize   int
}

// HeadlinesSourceGateway reads NewsAPI-style top headlines, one request per
// language and category.
type HeadlinesSourceGateway struct {
	client source_common.ProviderDoer
	config Config
	now    func() time.Time
}

func NewHeadlinesSourceGateway(client source_common.ProviderDoer, cfg Config) *HeadlinesSourceGateway {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	return &HeadlinesSourceGateway{client: client, config: cfg, now: time.Now}
}

func (g *HeadlinesSourceGateway) SourceID() string {
	return SourceID
}

func (g *HeadlinesSourceGateway) FetchBatch(ctx context.Context, params domain.FetchParams) (*domain.ProviderPayload, error) {
	if strings.TrimSpace(g.config.APIKey) == "" {
		return nil, &domain.UpstreamError{SourceID: SourceID, Kind: domain.ErrorKindAuth, Cause: errors.New("api key not configured")}
	}

	categories := g.config.Categories
	if len(categories) == 0 {
		categories = []string{"general"}
	}
	if params.SingleCategory {
		categories = categories[:1]
	}

	payload := &domain.ProviderPayload{SourceID: SourceID, FetchedAt: g.now().UTC()}
	for _, lang := range source_common.Languages(params, "en") {
		for _, category := range categories {
			body, err := g.client.Do(ctx, SourceID, provider_client.Request{
				URL: strings.TrimRight(g.config.BaseURL, "/") + "/top-headlines",
				Query: map[string]string{
					"language": lang,
					"category": category,
					"pageSize": strconv.Itoa(g.config.PageSize),
				},
				Headers: map[string]string{"X-Api-Key": g.config.APIKey},
			})
			if err != nil {
				return nil, fmt.Errorf("top headlines %s/%s: %w", lang, category, err)
			}
			payload.Pages = append(payload.Pages, domain.PayloadPage{Label: category, Language: lang, Body: body})
		}
	}

	logger.Logger.InfoContext(ctx, "Fetched headlines", "pages", len(payload.Pages))
	return payload, nil
}

type headlineItem struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

func (g *HeadlinesSourceGateway) ToCandidates(payload *domain.ProviderPayload) (*domain.CandidateBatch, error) {
	if err := source_common.CheckPayload(SourceID, payload); err != nil {
		return nil, err
	}

	collector := source_common.NewCollector(len(payload.Pages) * g.config.PageSize)
	for _, page := range payload.Pages {
		items, err := source_common.DecodeArray(SourceID, page.Body, "articles")
		if err != nil {
			return nil, err
		}
		for _, raw := range items {
			var item headlineItem
			if err := json.Unmarshal(raw, &item); err != nil {
				collector.Reject()
				continue
			}
			// NewsAPI marks takedowns with this placeholder title.
			if item.Title == "[Removed]" {
				collector.Reject()
				continue
			}
			collector.Add(domain.CandidateArticle{
				SourceID:    SourceID,
				Title:       item.Title,
				Description: item.Description,
				Content:     trimTruncationMarker(item.Content),
				SourceName:  item.Source.Name,
				URL:         item.URL,
				ImageURL:    item.URLToImage,
				PublishedAt: source_common.ParseTime(item.PublishedAt),
				Language:    page.Language,
			})
		}
	}
	return collector.Batch(), nil
}

// trimTruncationMarker drops the "[+1234 chars]" suffix NewsAPI appends.
func trimTruncationMarker(content string) string {
	if i := strings.LastIndex(content, "[+"); i >= 0 && strings.HasSuffix(content, "chars]") {
		return strings.TrimSpace(content[:i])
	}
	return content
}
