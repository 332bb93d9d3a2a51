// Package newsletter implements the newsletter subscriber repository.
package newsletter

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides subscriber persistence. Subscribers are keyed by email.
type Repo struct {
	*base.Base[domain.NewsletterSubscriber]
}

// New creates a subscriber repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.NewsletterSubscriber](db, base.Config{
			Table:      "newsletter_subscribers",
			Entity:     "subscriber",
			PrimaryKey: "email",
		}, opts...),
	}
}

// FindByEmail returns the subscriber or nil.
func (r *Repo) FindByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	return r.Get(sq.Eq{"email": email}).OneOrNone(ctx)
}

// Subscribe inserts a new subscriber. An existing email fails with
// domain.ErrAlreadyExists.
func (r *Repo) Subscribe(ctx context.Context, s *domain.NewsletterSubscriber) error {
	return r.Insert(ctx, s)
}
