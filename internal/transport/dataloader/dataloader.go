// Package dataloader provides per-request DataLoaders that batch author
// lookups made while rendering lists of forum and direct messages.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

// Loaders holds the DataLoader instances of one request.
type Loaders struct {
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// lifetime of the returned value, so create one per request.
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		UserByID: dataloader.NewBatchedLoader(
			newUsersBatchFn(users),
			dataloader.WithWait[uuid.UUID, *domain.User](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.User](maxBatch),
		),
	}
}

// newUsersBatchFn resolves a batch of user ids. Unknown ids resolve to nil.
func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		results := make([]*dataloader.Result[*domain.User], len(keys))

		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.User]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[k]}
		}
		return results
	}
}

// UserNames resolves display names for ids in one batch. Ids without a
// user map to an empty string.
func (l *Loaders) UserNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	users, errs := l.UserByID.LoadMany(ctx, ids)()
	names := make(map[uuid.UUID]string, len(ids))
	for i, id := range ids {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		if users[i] != nil {
			names[id] = users[i].FullName()
		}
	}
	return names, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's Loaders, or nil when the middleware is
// not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
