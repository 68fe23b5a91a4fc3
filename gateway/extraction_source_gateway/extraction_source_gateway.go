package extraction_source_gateway

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"news-pipeline/domain"
	"news-pipeline/driver/provider_client"
	"news-pipeline/gateway/source_common"
	"news-pipeline/utils/logger"
)

const SourceID = "extraction"

type Config struct {
	BaseURL    string
	APIKey     string
	TargetURLs []string
	Prompt     string
}

// articleSchema is the JSON schema sent with every extraction request.
var articleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"articles": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":          map[string]any{"type": "string"},
					"content":        map[string]any{"type": "string"},
					"published_date": map[string]any{"type": "string"},
					"source":         map[string]any{"type": "string"},
					"url":            map[string]any{"type": "string"},
				},
				"required": []string{"title", "content", "published_date"},
			},
		},
	},
	"required": []string{"articles"},
}

type extractRequest struct {
	URL    string         `json:"url"`
	Prompt string         `json:"prompt"`
	Schema map[string]any `json:"schema"`
}

// ExtractionSourceGateway asks a structured-extraction service to pull
// articles out of arbitrary listing pages.
type ExtractionSourceGateway struct {
	client source_common.ProviderDoer
	config Config
	now    func() time.Time
}

func NewExtractionSourceGateway(client source_common.ProviderDoer, cfg Config) *ExtractionSourceGateway {
	return &ExtractionSourceGateway{client: client, config: cfg, now: time.Now}
}

func (g *ExtractionSourceGateway) SourceID() string {
	return SourceID
}

func (g *ExtractionSourceGateway) FetchBatch(ctx context.Context, _ domain.FetchParams) (*domain.ProviderPayload, error) {
	if strings.TrimSpace(g.config.APIKey) == "" {
		return nil, &domain.UpstreamError{SourceID: SourceID, Kind: domain.ErrorKindAuth, Cause: errors.New("api key not configured")}
	}
	if len(g.config.TargetURLs) == 0 {
		return nil, &domain.MalformedPayloadError{SourceID: SourceID, Reason: "no target urls configured"}
	}

	payload := &domain.ProviderPayload{SourceID: SourceID, FetchedAt: g.now().UTC()}
	for _, target := range g.config.TargetURLs {
		body, err := g.client.Do(ctx, SourceID, provider_client.Request{
			Method:  "POST",
			URL:     strings.TrimRight(g.config.BaseURL, "/") + "/extract",
			Headers: map[string]string{"Authorization": "Bearer " + g.config.APIKey},
			Body: extractRequest{
				URL:    target,
				Prompt: g.config.Prompt,
				Schema: articleSchema,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", target, err)
		}
		payload.Pages = append(payload.Pages, domain.PayloadPage{Label: target, Body: body})
	}

	logger.Logger.InfoContext(ctx, "Extracted target pages", "pages", len(payload.Pages))
	return payload, nil
}

type extractedArticle struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
	URL           string `json:"url"`
}

func (g *ExtractionSourceGateway) ToCandidates(payload *domain.ProviderPayload) (*domain.CandidateBatch, error) {
	if err := source_common.CheckPayload(SourceID, payload); err != nil {
		return nil, err
	}

	collector := source_common.NewCollector(len(payload.Pages) * 10)
	for _, page := range payload.Pages {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(page.Body, &envelope); err != nil || len(envelope.Data) == 0 {
			return nil, &domain.MalformedPayloadError{SourceID: SourceID, Reason: "missing data object", Cause: err}
		}
		items, err := source_common.DecodeArray(SourceID, envelope.Data, "articles")
		if err != nil {
			return nil, err
		}

		for _, raw := range items {
			var a extractedArticle
			if err := json.Unmarshal(raw, &a); err != nil {
				collector.Reject()
				continue
			}
			// Schema-required fields; the model sometimes leaves them empty.
			if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Content) == "" || strings.TrimSpace(a.PublishedDate) == "" {
				collector.Reject()
				continue
			}
			articleURL := strings.TrimSpace(a.URL)
			var guid string
			if articleURL == "" {
				guid = itemDigest(page.Label, a.Title, a.PublishedDate)
				articleURL = page.Label + "#" + guid[:12]
			}
			collector.Add(domain.CandidateArticle{
				SourceID:    SourceID,
				GUID:        guid,
				Title:       a.Title,
				Content:     a.Content,
				SourceName:  a.Source,
				URL:         articleURL,
				PublishedAt: source_common.ParseTime(a.PublishedDate),
			})
		}
	}
	return collector.Batch(), nil
}

// itemDigest identifies an extracted item that has no link of its own. The
// listing page alone is shared by every such item on it.
func itemDigest(pageURL, title, published string) string {
	sum := sha1.Sum([]byte(pageURL + "\n" + strings.TrimSpace(title) + "\n" + strings.TrimSpace(published)))
	return hex.EncodeToString(sum[:])
}
