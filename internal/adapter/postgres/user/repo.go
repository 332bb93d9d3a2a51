// Package user implements the user repository.
package user

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides user persistence.
type Repo struct {
	*base.Base[domain.User]
}

// New creates a user repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.User](db, base.Config{Table: "users", Entity: "user"}, opts...),
	}
}

// GetByID returns an active user or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.GetActive(ctx, id)
}

// GetByIDAny returns a user whether or not it is soft-deleted.
func (r *Repo) GetByIDAny(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.Get(base.ByID(id)).OneOrNotFound(ctx, id)
}

// GetByIDs returns the users with the given ids, deleted ones included so
// historical content can still show an author name.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}
	return r.Get(sq.Eq{"id": ids}).All(ctx)
}

// ListActive returns every active user, newest first.
func (r *Repo) ListActive(ctx context.Context) ([]*domain.User, error) {
	return r.Active().OrderBy("created_at DESC").All(ctx)
}

// Search applies a filter mapping. Soft-deleted users are excluded unless
// includeDeleted is set.
func (r *Repo) Search(ctx context.Context, filter domain.FilterMap, includeDeleted bool) ([]*domain.User, error) {
	q := r.GetWhere(filter)
	if !includeDeleted {
		q = q.Where(base.NotDeleted())
	}
	return q.OrderBy("created_at DESC").All(ctx)
}

// FindByEmail looks up a user by email among all rows. Returns nil when absent.
func (r *Repo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.Get(sq.Eq{"email": email}).OneOrNone(ctx)
}

// FindByPhone looks up a user by phone number among all rows. Returns nil when absent.
func (r *Repo) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.Get(sq.Eq{"phone_number": phone}).OneOrNone(ctx)
}

// LockByID takes a row lock on an active user for the rest of the transaction.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.LockActive(ctx, id)
}
