// Package certificate implements the certificate repository.
package certificate

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides certificate persistence.
type Repo struct {
	*base.Base[domain.Certificate]
}

// New creates a certificate repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.Certificate](db, base.Config{Table: "certificates", Entity: "certificate"}, opts...),
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	return r.GetActive(ctx, id)
}

// FindByModuleQuiz returns the active certificate issued for a module quiz, or nil.
func (r *Repo) FindByModuleQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Certificate, error) {
	return r.Active(sq.Eq{"module_quiz_id": quizID}).OneOrNone(ctx)
}

// ListByUser returns a user's active certificates, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
	return r.Active(sq.Eq{"user_id": userID}).OrderBy("created_at DESC", "id").All(ctx)
}
