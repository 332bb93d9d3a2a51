// Package modulequiz implements the module quiz repository.
package modulequiz

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides module quiz persistence.
type Repo struct {
	*base.Base[domain.ModuleQuiz]
}

// New creates a module quiz repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.ModuleQuiz](db, base.Config{Table: "module_quizzes", Entity: "module quiz"}, opts...),
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	return r.GetActive(ctx, id)
}

// LockByID reads an active module quiz with a row lock, serializing progress
// and score changes on it.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	return r.LockActive(ctx, id)
}

// FindByUserAndName returns the active quiz a user has for a module, or nil.
func (r *Repo) FindByUserAndName(ctx context.Context, userID uuid.UUID, module string) (*domain.ModuleQuiz, error) {
	return r.Active(sq.Eq{"user_id": userID, "module_name": module}).OrderBy("created_at", "id").First(ctx)
}

// ListByUser returns a user's active module quizzes.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ModuleQuiz, error) {
	return r.Active(sq.Eq{"user_id": userID}).OrderBy("created_at", "id").All(ctx)
}

// TotalProgress sums progress counters over a user's active module quizzes.
func (r *Repo) TotalProgress(ctx context.Context, userID uuid.UUID) (domain.ModuleProgressTotal, error) {
	var total domain.ModuleProgressTotal
	q := base.Builder().
		Select(
			"COALESCE(SUM(module_progress), 0) AS total_progress",
			"COALESCE(SUM(module_completed), 0) AS total_completed",
		).
		From(r.Table()).
		Where(sq.Eq{"user_id": userID}).
		Where(base.NotDeleted())
	if err := r.Scalar(ctx, &total, q); err != nil {
		return domain.ModuleProgressTotal{}, err
	}
	return total, nil
}
