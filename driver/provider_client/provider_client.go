// Package provider_client is the shared HTTP client for upstream news providers.
package provider_client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"news-pipeline/domain"
	"news-pipeline/utils/rate_limiter"
	"news-pipeline/utils/resilience"
)

type Config struct {
	Timeout      time.Duration
	UserAgent    string
	HostInterval time.Duration
}

// Request describes one upstream call.
type Request struct {
	Method  string
	URL     string
	Query   map[string]string
	Headers map[string]string
	Body    any
}

// Client executes provider requests under the retry policy. Every attempt is
// bounded by the client timeout.
type Client struct {
	http        *resty.Client
	retrier     *resilience.Retrier
	hostLimiter *rate_limiter.HostRateLimiter
}

func NewClient(cfg Config, retrier *resilience.Retrier) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{
		http:        httpClient,
		retrier:     retrier,
		hostLimiter: rate_limiter.NewHostRateLimiter(cfg.HostInterval),
	}
}

// Do runs req with retries and returns the body of the first 2xx response.
func (c *Client) Do(ctx context.Context, sourceID string, req Request) ([]byte, error) {
	var body []byte

	err := c.retrier.Do(ctx, sourceID, func(ctx context.Context) error {
		b, err := c.once(ctx, sourceID, req)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) once(ctx context.Context, sourceID string, req Request) ([]byte, error) {
	if err := c.hostLimiter.WaitForHost(ctx, req.URL); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.UpstreamError{SourceID: sourceID, Kind: domain.ErrorKindTransient, Cause: err}
	}

	r := c.http.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := r.Execute(method, req.URL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.UpstreamError{
			SourceID: sourceID,
			Kind:     domain.ErrorKindTransient,
			Cause:    fmt.Errorf("%s %s: %w", method, req.URL, err),
		}
	}

	if !resp.IsSuccess() {
		return nil, domain.NewUpstreamStatusError(sourceID, resp.StatusCode())
	}

	return resp.Body(), nil
}
