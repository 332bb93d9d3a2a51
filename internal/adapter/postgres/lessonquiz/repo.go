// Package lessonquiz implements the lesson quiz repository.
package lessonquiz

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides lesson quiz persistence.
type Repo struct {
	*base.Base[domain.LessonQuiz]
}

// New creates a lesson quiz repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.LessonQuiz](db, base.Config{Table: "lesson_quizzes", Entity: "lesson quiz"}, opts...),
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LessonQuiz, error) {
	return r.GetActive(ctx, id)
}

func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.LessonQuiz, error) {
	return r.LockActive(ctx, id)
}

// FindByUserAndName returns the active quiz a user has for a lesson, or nil.
func (r *Repo) FindByUserAndName(ctx context.Context, userID uuid.UUID, lesson string) (*domain.LessonQuiz, error) {
	return r.Active(sq.Eq{"user_id": userID, "lesson_name": lesson}).OrderBy("created_at", "id").First(ctx)
}

func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LessonQuiz, error) {
	return r.Active(sq.Eq{"user_id": userID}).OrderBy("created_at", "id").All(ctx)
}
