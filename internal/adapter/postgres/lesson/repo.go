// Package lesson implements the lesson repository.
package lesson

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides lesson persistence.
type Repo struct {
	*base.Base[domain.Lesson]
}

// New creates a lesson repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.Lesson](db, base.Config{Table: "lessons", Entity: "lesson"}, opts...),
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	return r.GetActive(ctx, id)
}

func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	return r.LockActive(ctx, id)
}

// ListByUser returns a user's active lessons.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Lesson, error) {
	return r.Active(sq.Eq{"user_id": userID}).OrderBy("created_at", "id").All(ctx)
}
