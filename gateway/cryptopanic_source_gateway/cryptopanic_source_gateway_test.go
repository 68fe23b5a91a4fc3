package cryptopanic_source_gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
	"news-pipeline/driver/provider_client"
	"news-pipeline/usecase/dedup_usecase"
	"news-pipeline/utils/resilience"
)

const postsBody = `{"count":2,"results":[
 {"kind":"news","id":90001,"title":"Exchange lists new staking product","url":"https://cryptopanic.com/news/90001","published_at":"2026-10-14T09:30:00Z",
  "source":{"title":"The Block","region":"en","domain":"theblock.co"},"votes":{"positive":6,"negative":1},
  "currencies":[{"code":"ETH"},{"code":"SOL"}],"metadata":{"description":"The product launches next week.","image":"https://img.example.com/s.png"}},
 {"kind":"news","id":90002,"title":"Post without metadata description","url":"https://cryptopanic.com/news/90002","published_at":"2026-10-14T09:30:00Z",
  "source":{"title":"Blog","region":"en"},"votes":{"positive":0,"negative":0}}
]}`

func newClient() *provider_client.Client {
	retrier := resilience.NewRetrier(resilience.RetryConfig{MaxRetries: 1, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return provider_client.NewClient(provider_client.Config{Timeout: 5 * time.Second}, retrier)
}

func TestScoreSeed(t *testing.T) {
	tests := []struct {
		name     string
		positive int
		negative int
		want     int
	}{
		{"positive heavy", 6, 3, 70},
		{"positive only", 1, 0, 70},
		{"negative heavy", 1, 2, 30},
		{"negative only", 0, 4, 30},
		{"balanced", 3, 2, 50},
		{"no votes", 0, 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreSeed(tt.positive, tt.negative))
		})
	}
}

func TestCryptoPanicSourceGateway_FetchAndConvert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/posts/", r.URL.Path)
		assert.Equal(t, "tok", q.Get("auth_token"))
		assert.Equal(t, "rising", q.Get("filter"))
		assert.Equal(t, "news", q.Get("kind"))
		assert.Equal(t, "en,de", q.Get("regions"))
		_, _ = w.Write([]byte(postsBody))
	}))
	defer server.Close()

	gw := NewCryptoPanicSourceGateway(newClient(), Config{
		BaseURL: server.URL,
		Token:   "tok",
		Filter:  "rising",
		Kind:    "news",
		Regions: "en",
	})

	payload, err := gw.FetchBatch(context.Background(), domain.FetchParams{Languages: []string{"en", "de"}})
	require.NoError(t, err)

	batch, err := gw.ToCandidates(payload)
	require.NoError(t, err)
	require.Len(t, batch.Candidates, 1)
	assert.Equal(t, 1, batch.Rejected)

	c := batch.Candidates[0]
	assert.Equal(t, "90001", c.GUID)
	assert.Equal(t, []string{"eth", "sol"}, c.Tags)
	assert.Equal(t, "crypto", c.Category)
	require.NotNil(t, c.ScoreSeed)
	assert.Equal(t, 70, *c.ScoreSeed)
}

func TestCryptoPanicSourceGateway_MissingToken(t *testing.T) {
	gw := NewCryptoPanicSourceGateway(newClient(), Config{BaseURL: "http://127.0.0.1:1"})

	_, err := gw.FetchBatch(context.Background(), domain.FetchParams{})
	assert.ErrorIs(t, err, domain.ErrUpstreamAuth)
}

func TestCryptoPanicSourceGateway_ToCandidates_Malformed(t *testing.T) {
	gw := NewCryptoPanicSourceGateway(newClient(), Config{})

	_, err := gw.ToCandidates(&domain.ProviderPayload{
		SourceID: SourceID,
		Pages:    []domain.PayloadPage{{Label: "posts", Body: []byte(`{"count":0}`)}},
	})
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestCryptoPanicSourceGateway_NullIDFallsBackToURL(t *testing.T) {
	body := `{"count":2,"results":[
 {"kind":"news","id":null,"title":"Validator set expands after upgrade","url":"https://cryptopanic.com/news/a","published_at":"2026-10-14T09:30:00Z",
  "source":{"title":"Chain Daily"},"metadata":{"description":"The upgrade went live on Tuesday."}},
 {"kind":"news","id":null,"title":"Stablecoin issuer publishes reserve audit","url":"https://cryptopanic.com/news/b","published_at":"2026-10-14T09:40:00Z",
  "source":{"title":"Chain Daily"},"metadata":{"description":"Reserves matched supply at month end."}}
]}`
	gw := NewCryptoPanicSourceGateway(newClient(), Config{})

	batch, err := gw.ToCandidates(&domain.ProviderPayload{
		SourceID: SourceID,
		Pages:    []domain.PayloadPage{{Label: "posts", Body: []byte(body)}},
	})
	require.NoError(t, err)
	require.Len(t, batch.Candidates, 2)

	for _, c := range batch.Candidates {
		assert.Empty(t, c.GUID)
		assert.Equal(t, c.URL, c.DedupKey())
	}
	assert.Len(t, dedup_usecase.FilterNew(batch.Candidates, map[string]struct{}{}), 2)
}
