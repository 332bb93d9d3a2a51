package modulequiz

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/testutil"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

func TestRepo_TotalProgress(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockQuerier(t)
	repo := New(mock)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COALESCE(SUM(module_progress), 0) AS total_progress, COALESCE(SUM(module_completed), 0) AS total_completed "+
			"FROM module_quizzes WHERE user_id = $1 AND is_deleted = $2",
	)).
		WithArgs(userID.String(), false).
		WillReturnRows(pgxmock.NewRows([]string{"total_progress", "total_completed"}).AddRow(3, 1))

	got, err := repo.TotalProgress(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.ModuleProgressTotal{TotalProgress: 3, TotalCompleted: 1}, got)
	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_TotalProgress_Error(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockQuerier(t)
	repo := New(mock)
	boom := errors.New("connection reset")

	mock.ExpectQuery("FROM module_quizzes").
		WithArgs(pgxmock.AnyArg(), false).
		WillReturnError(boom)

	_, err := repo.TotalProgress(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_FindByUserAndName_None(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockQuerier(t)
	repo := New(mock)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM module_quizzes WHERE module_name = $1 AND user_id = $2 AND is_deleted = $3 ORDER BY created_at, id LIMIT 1",
	)).
		WithArgs("Budgeting", userID.String(), false).
		WillReturnRows(pgxmock.NewRows(repo.Columns()))

	got, err := repo.FindByUserAndName(context.Background(), userID, "Budgeting")
	require.NoError(t, err)
	assert.Nil(t, got)
	testutil.ExpectationsWereMet(t, mock)
}
