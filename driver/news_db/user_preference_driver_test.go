package news_db

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
)

func TestNewsDBRepository_FetchUserPreference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"user_id", "keywords", "excluded_keywords", "categories", "sources", "languages"}).
		AddRow("user-1", []string{"ai"}, []string{"celebrity"}, []string{"technology"}, []string{}, []string{"en"})
	mock.ExpectQuery(regexp.QuoteMeta(fetchUserPreferenceQuery)).
		WithArgs("user-1").
		WillReturnRows(rows)

	pref, err := NewNewsDBRepository(mock).FetchUserPreference(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ai"}, pref.Keywords)
	assert.Equal(t, []string{"technology"}, pref.Categories)
	assert.Equal(t, []string{"celebrity"}, pref.ExcludedKeywords)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDBRepository_FetchUserPreference_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(fetchUserPreferenceQuery)).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err = NewNewsDBRepository(mock).FetchUserPreference(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrPrefsNotFound)
}
