// Package post implements the post repository.
package post

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides post persistence.
type Repo struct {
	*base.Base[domain.Post]
}

// New creates a post repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.Post](db, base.Config{Table: "posts", Entity: "post"}, opts...),
	}
}

// GetByID returns an active post or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return r.GetActive(ctx, id)
}

// LockByID returns an active post locked for update.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return r.LockActive(ctx, id)
}

// ListActive returns the feed, newest first.
func (r *Repo) ListActive(ctx context.Context) ([]*domain.Post, error) {
	return r.Active().OrderBy("created_at DESC").All(ctx)
}

// ListByUser returns the active posts of one author, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error) {
	return r.Active(sq.Eq{"user_id": userID}).OrderBy("created_at DESC").All(ctx)
}
