package news_db

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
)

func TestBuildExistingKeysQuery(t *testing.T) {
	query, args, err := buildExistingKeysQuery([]domain.ArticleKey{
		{SourceID: "cryptoA", GUID: "g-1", URL: "https://example.com/1"},
		{SourceID: "headlines", URL: "https://example.com/2"},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM articles")
	assert.Contains(t, query, "url IN ($1,$2)")
	assert.Contains(t, query, "source_guid IN ($3)")
	assert.Equal(t, []any{"https://example.com/1", "https://example.com/2", "g-1"}, args)
}

func TestNewsDBRepository_ExistingKeys(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNewsDBRepository(mock)
	keys := []domain.ArticleKey{
		{SourceID: "cryptoA", GUID: "g-1", URL: "https://example.com/1"},
		{SourceID: "headlines", URL: "https://example.com/2"},
	}
	query, _, err := buildExistingKeysQuery(keys)
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{"source_id", "source_guid", "url"}).
		AddRow("cryptoA", "g-1", "https://example.com/1")
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("https://example.com/1", "https://example.com/2", "g-1").
		WillReturnRows(rows)

	existing, err := repo.ExistingKeys(context.Background(), keys)
	require.NoError(t, err)

	assert.Contains(t, existing, "cryptoA:g-1")
	assert.Contains(t, existing, "https://example.com/1")
	assert.NotContains(t, existing, "https://example.com/2")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_ExistingKeys_Chunked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	keys := make([]domain.ArticleKey, existenceChunkSize+5)
	for i := range keys {
		keys[i] = domain.ArticleKey{SourceID: "headlines", URL: fmt.Sprintf("https://example.com/%d", i)}
	}

	mock.ExpectQuery("SELECT source_id").
		WillReturnRows(pgxmock.NewRows([]string{"source_id", "source_guid", "url"}))
	mock.ExpectQuery("SELECT source_id").
		WillReturnRows(pgxmock.NewRows([]string{"source_id", "source_guid", "url"}).
			AddRow("headlines", "", "https://example.com/203"))

	existing, err := NewNewsDBRepository(mock).ExistingKeys(context.Background(), keys)
	require.NoError(t, err)
	assert.Len(t, existing, 1)
	assert.Contains(t, existing, "https://example.com/203")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_ExistingKeys_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT source_id").WillReturnError(errors.New("too many parameters"))

	_, err = NewNewsDBRepository(mock).ExistingKeys(context.Background(), []domain.ArticleKey{
		{SourceID: "headlines", URL: "https://example.com/1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query existing keys")
}

func TestNewsDBRepository_RecentKeys(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"source_id", "source_guid", "url"}).
		AddRow("cryptoB", "42", "https://example.com/c").
		AddRow("crawler", "", "https://example.com/d")
	mock.ExpectQuery(regexp.QuoteMeta(recentKeysQuery)).
		WithArgs(500).
		WillReturnRows(rows)

	keys, err := NewNewsDBRepository(mock).RecentKeys(context.Background(), 500)
	require.NoError(t, err)

	assert.Contains(t, keys, "cryptoB:42")
	assert.Contains(t, keys, "https://example.com/c")
	assert.Contains(t, keys, "https://example.com/d")
	require.NoError(t, mock.ExpectationsWereMet())
}
