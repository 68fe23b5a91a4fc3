package news_db

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
)

func testArticle(id, url string) domain.Article {
	score := 55
	return domain.Article{
		ID:          id,
		SourceID:    "headlines",
		Title:       "Quarterly results beat expectations",
		Description: "Shares rose after the announcement",
		SourceName:  "Reuters",
		URL:         url,
		PublishedAt: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
		Language:    "en",
		Category:    domain.CategoryBusiness,
		Tags:        []string{"earnings"},
		BaseScore:   &score,
		CreatedAt:   time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuildInsertArticlesQuery_Placeholders(t *testing.T) {
	query := buildInsertArticlesQuery(2)

	assert.True(t, strings.HasPrefix(query, insertArticlesPrefix))
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT DO NOTHING"))
	assert.Contains(t, query, "($1, $2, $3")
	assert.Contains(t, query, "$30)")
	assert.NotContains(t, query, "$31")
}

func TestNewsDBRepository_InsertArticles_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNewsDBRepository(mock)
	articles := []domain.Article{
		testArticle("11111111-1111-1111-1111-111111111111", "https://example.com/a"),
		testArticle("22222222-2222-2222-2222-222222222222", "https://example.com/b"),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(buildInsertArticlesQuery(2))).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	inserted, err := repo.InsertArticles(context.Background(), articles)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted, "conflicting rows are skipped, not counted")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_InsertArticles_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNewsDBRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(buildInsertArticlesQuery(1))).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	inserted, err := repo.InsertArticles(context.Background(), []domain.Article{
		testArticle("11111111-1111-1111-1111-111111111111", "https://example.com/a"),
	})
	require.Error(t, err)
	assert.Zero(t, inserted)
	assert.Contains(t, err.Error(), "failed to batch insert articles")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_InsertArticles_EmptyBatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	inserted, err := NewNewsDBRepository(mock).InsertArticles(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_NilPool(t *testing.T) {
	repo := NewNewsDBRepository(nil)

	_, err := repo.InsertArticles(context.Background(), []domain.Article{testArticle("x", "https://example.com")})
	assert.ErrorIs(t, err, errNoConnection)

	_, err = repo.RecentKeys(context.Background(), 500)
	assert.ErrorIs(t, err, errNoConnection)
}
