package message

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/testutil"
)

func TestRepo_Conversation(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockQuerier(t)
	repo := New(mock)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM messages WHERE (receiver_id = $1 AND sender_id = $2 OR receiver_id = $3 AND sender_id = $4) "+
			"AND is_deleted = $5 ORDER BY created_at, id",
	)).
		WithArgs(b.String(), a.String(), a.String(), b.String(), false).
		WillReturnRows(pgxmock.NewRows(repo.Columns()))

	got, err := repo.Conversation(context.Background(), a, b)
	require.NoError(t, err)
	assert.Empty(t, got)
	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_ListForUser(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockQuerier(t)
	repo := New(mock)
	u := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM messages WHERE (sender_id = $1 OR receiver_id = $2) AND is_deleted = $3 ORDER BY created_at DESC, id",
	)).
		WithArgs(u.String(), u.String(), false).
		WillReturnRows(pgxmock.NewRows(repo.Columns()))

	_, err := repo.ListForUser(context.Background(), u)
	require.NoError(t, err)
	testutil.ExpectationsWereMet(t, mock)
}
