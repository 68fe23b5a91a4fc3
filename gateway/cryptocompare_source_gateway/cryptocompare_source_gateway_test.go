package cryptocompare_source_gateway

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
	"news-pipeline/utils/resilience"
)

const newsBody = `{"Type":100,"Message":"News list successfully returned","Data":[
 {"id":"4120001","guid":"https://www.coindesk.com/markets/btc-etf","published_on":1791970200,"imageurl":"https://img.example.com/btc.png","title":"Bitcoin climbs as spot ETF inflows accelerate","url":"https://www.coindesk.com/markets/btc-etf","body":"Inflows into spot funds continued for a fifth day.","tags":"BTC|ETF","lang":"EN","categories":"BTC|Market","source":"coindesk","source_info":{"name":"CoinDesk"}},
 {"id":4120002,"guid":"","published_on":1791970200,"title":"Ether upgrade scheduled for next quarter","url":"https://example.com/eth","body":"Developers agreed on a date.","tags":"","lang":"EN","categories":"ETH","source":"blog","source_info":{"name":""}},
 {"id":"4120003","published_on":0,"title":"Undated story that cannot be stored","url":"https://example.com/undated","body":"No date."}
]}`

func newClient() *provider_client.Client {
	retrier := resilience.NewRetrier(resilience.RetryConfig{MaxRetries: 1, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return provider_client.NewClient(provider_client.Config{Timeout: 5 * time.Second}, retrier)
}

func TestCryptoCompareSourceGateway_FetchAndConvert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v2/news/", r.URL.Path)
		assert.Equal(t, "EN", r.URL.Query().Get("lang"))
		assert.Equal(t, "Apikey k", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(newsBody))
	}))
	defer server.Close()

	gw := NewCryptoCompareSourceGateway(newClient(), Config{BaseURL: server.URL, APIKey: "k"})

	payload, err := gw.FetchBatch(context.Background(), domain.FetchParams{})
	require.NoError(t, err)
	require.Len(t, payload.Pages, 1)

	batch, err := gw.ToCandidates(payload)
	require.NoError(t, err)
	require.Len(t, batch.Candidates, 2)
	assert.Equal(t, 1, batch.Rejected)

	first := batch.Candidates[0]
	assert.Equal(t, "crypto", first.Category)
	assert.Equal(t, []string{"btc", "market", "etf"}, first.Tags)
	assert.Equal(t, "https://www.coindesk.com/markets/btc-etf", first.GUID)
	assert.Equal(t, "CoinDesk", first.SourceName)
	assert.Equal(t, "en", first.Language)
	assert.Equal(t, time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC), first.PublishedAt)

	second := batch.Candidates[1]
	assert.Equal(t, "4120002", second.GUID, "numeric id is used when guid is empty")
	assert.Equal(t, "blog", second.SourceName)
}

func TestCryptoCompareSourceGateway_ToCandidates_Malformed(t *testing.T) {
	gw := NewCryptoCompareSourceGateway(newClient(), Config{})

	_, err := gw.ToCandidates(&domain.ProviderPayload{
		SourceID: SourceID,
		Pages:    []domain.PayloadPage{{Label: "news", Body: []byte(`{"Response":"Error","Message":"rate limit","Data":{}}`)}},
	})
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestCryptoCompareSourceGateway_FetchBatch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := NewCryptoCompareSourceGateway(newClient(), Config{BaseURL: server.URL})

	_, err := gw.FetchBatch(context.Background(), domain.FetchParams{})
	assert.ErrorIs(t, err, domain.ErrUpstreamTransient)
}
