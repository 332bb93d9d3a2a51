// Package comment implements the comment repository.
package comment

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides comment persistence.
type Repo struct {
	*base.Base[domain.Comment]
}

// New creates a comment repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.Comment](db, base.Config{Table: "comments", Entity: "comment"}, opts...),
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	return r.GetActive(ctx, id)
}

func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	return r.LockActive(ctx, id)
}

// ListByPost returns the active comments of a post in the order they were written.
func (r *Repo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	return r.Active(sq.Eq{"post_id": postID}).OrderBy("created_at", "id").All(ctx)
}
