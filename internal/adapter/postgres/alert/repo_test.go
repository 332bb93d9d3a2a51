package alert

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/testutil"
)

func TestRepo_Due(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	tests := []struct {
		name   string
		userID *uuid.UUID
		where  string
		args   []any
	}{
		{
			name:  "every user",
			where: "WHERE alert_datetime <= $1 AND is_deleted = $2 ORDER BY alert_datetime, id",
			args:  []any{at, false},
		},
		{
			name:   "one user",
			userID: &userID,
			where:  "WHERE alert_datetime <= $1 AND is_deleted = $2 AND user_id = $3 ORDER BY alert_datetime, id",
			args:   []any{at, false, userID.String()},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := testutil.NewMockQuerier(t)
			repo := New(mock)

			mock.ExpectQuery(regexp.QuoteMeta("FROM alerts " + tt.where)).
				WithArgs(tt.args...).
				WillReturnRows(pgxmock.NewRows(repo.Columns()))

			got, err := repo.Due(context.Background(), tt.userID, at)
			require.NoError(t, err)
			require.Empty(t, got)
			testutil.ExpectationsWereMet(t, mock)
		})
	}
}
