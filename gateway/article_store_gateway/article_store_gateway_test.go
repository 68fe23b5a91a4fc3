package article_store_gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
	"news-pipeline/driver/news_db"
	"news-pipeline/utils/logger"
)

func init() {
	logger.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestArticleStoreGateway_InsertArticles_WrapsPersistenceError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	gw := NewArticleStoreGateway(news_db.NewNewsDBRepository(mock))
	_, err = gw.InsertArticles(context.Background(), []domain.Article{{
		ID:          "11111111-1111-1111-1111-111111111111",
		SourceID:    "headlines",
		Title:       "A valid article title",
		URL:         "https://example.com/a",
		PublishedAt: time.Now(),
	}})

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, domain.ErrorKindPersistence, domain.KindOf(err))
}

func TestArticleStoreGateway_ExistingKeys_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	keys, err := NewArticleStoreGateway(news_db.NewNewsDBRepository(mock)).ExistingKeys(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, keys)
	require.NoError(t, mock.ExpectationsWereMet(), "no query for an empty key set")
}

func TestArticleStoreGateway_NilDB(t *testing.T) {
	gw := NewArticleStoreGateway(nil)

	_, err := gw.InsertArticles(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	_, err = gw.RecentKeys(context.Background(), 500)
	assert.Error(t, err)
}
