package forum

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/testutil"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

func TestMemberRepo_Add_Duplicate(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockQuerier(t)
	repo := NewMembers(mock)
	m := &domain.ForumMember{ForumID: uuid.New(), UserID: uuid.New()}

	mock.ExpectQuery(`^INSERT INTO forum_members \(id,forum_id,user_id\) VALUES \(\$1,\$2,\$3\) RETURNING id, forum_id, user_id$`).
		WithArgs(pgxmock.AnyArg(), m.ForumID, m.UserID).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "forum_members_forum_user_key"})

	err := repo.Add(context.Background(), m)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	testutil.ExpectationsWereMet(t, mock)
}

func TestMemberRepo_Find(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockQuerier(t)
	repo := NewMembers(mock)
	forumID, userID := uuid.New(), uuid.New()
	id := uuid.New()

	mock.ExpectQuery(`FROM forum_members WHERE forum_id = \$1 AND user_id = \$2 LIMIT 2$`).
		WithArgs(forumID.String(), userID.String()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "forum_id", "user_id"}).AddRow(id, forumID, userID))

	got, err := repo.Find(context.Background(), forumID, userID)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, id, got.ID)
	}
	testutil.ExpectationsWereMet(t, mock)
}
