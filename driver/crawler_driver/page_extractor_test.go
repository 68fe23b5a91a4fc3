package crawler_driver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head>
<title>Fallback title</title>
<meta property="og:title" content="Open Graph title for the story">
<meta property="og:description" content="A short summary">
<meta property="og:image" content="/img/lead.jpg">
</head><body>
<article>
<h1>Open Graph title for the story</h1>
<p>The first paragraph of the story carries most of the reporting and is long enough to be kept by the extractor.</p>
<p>A second paragraph adds further detail about the event and the people involved in it.</p>
</article>
</body></html>`

func TestExtractPage(t *testing.T) {
	base, _ := url.Parse("https://example.com/news/story")

	page, err := ExtractPage([]byte(samplePage), base)
	require.NoError(t, err)

	assert.Equal(t, "Open Graph title for the story", page.Title)
	assert.Equal(t, "A short summary", page.Description)
	assert.Equal(t, "https://example.com/img/lead.jpg", page.ImageURL)
	assert.Contains(t, page.Text, "first paragraph of the story")
}

func TestPageExtractor_RobotsAndExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
		case "/news/story":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(samplePage))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	ex := NewPageExtractor(5*time.Second, "NewsPipeline/1.0", 0)
	ctx := context.Background()

	assert.True(t, ex.Allowed(ctx, server.URL+"/news/story"))
	assert.False(t, ex.Allowed(ctx, server.URL+"/private/draft"))

	page, err := ex.Extract(ctx, server.URL+"/news/story")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(page.ImageURL, "/img/lead.jpg"))

	_, err = ex.Extract(ctx, server.URL+"/missing")
	assert.Error(t, err)
}

func TestPageExtractor_MissingRobotsAllowsAll(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ex := NewPageExtractor(5*time.Second, "", 0)
	assert.True(t, ex.Allowed(context.Background(), server.URL+"/anything"))
}
