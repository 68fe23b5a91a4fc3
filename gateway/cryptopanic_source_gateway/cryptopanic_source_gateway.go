package cryptopanic_source_gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"news-pipeline/domain"
	"news-pipeline/driver/provider_client"
	"news-pipeline/gateway/source_common"
)

const SourceID = "cryptopanic"

const (
	seedPositive = 70
	seedNeutral  = 50
	seedNegative = 30
)

type Config struct {
	BaseURL string
	Token   string
	Filter  string
	Kind    string
	Regions string
}

// CryptoPanicSourceGateway reads the community-voted crypto feed.
type CryptoPanicSourceGateway struct {
	client source_common.ProviderDoer
	config Config
	now    func() time.Time
}

func NewCryptoPanicSourceGateway(client source_common.ProviderDoer, cfg Config) *CryptoPanicSourceGateway {
	return &CryptoPanicSourceGateway{client: client, config: cfg, now: time.Now}
}

func (g *CryptoPanicSourceGateway) SourceID() string {
	return SourceID
}

func (g *CryptoPanicSourceGateway) FetchBatch(ctx context.Context, params domain.FetchParams) (*domain.ProviderPayload, error) {
	if strings.TrimSpace(g.config.Token) == "" {
		return nil, &domain.UpstreamError{SourceID: SourceID, Kind: domain.ErrorKindAuth, Cause: errors.New("auth token not configured")}
	}

	query := map[string]string{
		"auth_token": g.config.Token,
		"metadata":   "true",
		"public":     "true",
	}
	if g.config.Filter != "" {
		query["filter"] = g.config.Filter
	}
	if g.config.Kind != "" {
		query["kind"] = g.config.Kind
	}
	regions := g.config.Regions
	if len(params.Languages) > 0 {
		regions = strings.Join(source_common.Languages(params), ",")
	}
	if regions != "" {
		query["regions"] = regions
	}

	body, err := g.client.Do(ctx, SourceID, provider_client.Request{
		URL:   strings.TrimRight(g.config.BaseURL, "/") + "/posts/",
		Query: query,
	})
	if err != nil {
		return nil, fmt.Errorf("crypto posts: %w", err)
	}

	return &domain.ProviderPayload{
		SourceID:  SourceID,
		FetchedAt: g.now().UTC(),
		Pages:     []domain.PayloadPage{{Label: "posts", Body: body}},
	}, nil
}

type votes struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

type post struct {
	ID          json.RawMessage `json:"id"`
	Kind        string          `json:"kind"`
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	PublishedAt string          `json:"published_at"`
	Source      struct {
		Title  string `json:"title"`
		Region string `json:"region"`
		Domain string `json:"domain"`
	} `json:"source"`
	Votes      votes `json:"votes"`
	Currencies []struct {
		Code string `json:"code"`
	} `json:"currencies"`
	Metadata struct {
		Description string `json:"description"`
		Image       string `json:"image"`
	} `json:"metadata"`
}

func (g *CryptoPanicSourceGateway) ToCandidates(payload *domain.ProviderPayload) (*domain.CandidateBatch, error) {
	if err := source_common.CheckPayload(SourceID, payload); err != nil {
		return nil, err
	}

	collector := source_common.NewCollector(50)
	for _, page := range payload.Pages {
		items, err := source_common.DecodeArray(SourceID, page.Body, "results")
		if err != nil {
			return nil, err
		}
		for _, raw := range items {
			var p post
			if err := json.Unmarshal(raw, &p); err != nil {
				collector.Reject()
				continue
			}

			tags := make([]string, 0, len(p.Currencies))
			for _, c := range p.Currencies {
				if code := strings.ToLower(strings.TrimSpace(c.Code)); code != "" {
					tags = append(tags, code)
				}
			}
			seed := ScoreSeed(p.Votes.Positive, p.Votes.Negative)

			collector.Add(domain.CandidateArticle{
				SourceID:    SourceID,
				Title:       p.Title,
				Description: p.Metadata.Description,
				SourceName:  p.Source.Title,
				URL:         p.URL,
				ImageURL:    p.Metadata.Image,
				PublishedAt: source_common.ParseTime(p.PublishedAt),
				GUID:        source_common.ProviderID(p.ID),
				Language:    strings.ToLower(p.Source.Region),
				Category:    string(domain.CategoryCrypto),
				Tags:        tags,
				ScoreSeed:   &seed,
			})
		}
	}
	return collector.Batch(), nil
}

// ScoreSeed turns community votes into a quality hint: clearly positive
// posts seed 70, clearly negative 30, anything else 50.
func ScoreSeed(positive, negative int) int {
	switch {
	case positive > 0 && positive >= 2*negative:
		return seedPositive
	case negative > 0 && negative >= 2*positive:
		return seedNegative
	default:
		return seedNeutral
	}
}
