package article_query_gateway

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
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

func TestArticleQueryGateway_FetchArticleByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT").WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	_, err = NewArticleQueryGateway(news_db.NewNewsDBRepository(mock)).FetchArticleByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestArticleQueryGateway_QueryArticles_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(assert.AnError)

	_, _, err = NewArticleQueryGateway(news_db.NewNewsDBRepository(mock)).QueryArticles(context.Background(), domain.ArticleFilter{})
	assert.ErrorIs(t, err, assert.AnError)
}
