// Package alert implements the alert repository.
package alert

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides alert persistence.
type Repo struct {
	*base.Base[domain.Alert]
}

// New creates an alert repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.Alert](db, base.Config{Table: "alerts", Entity: "alert"}, opts...),
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	return r.GetActive(ctx, id)
}

// ListByUser returns a user's active alerts by schedule.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Alert, error) {
	return r.Active(sq.Eq{"user_id": userID}).OrderBy("alert_datetime", "id").All(ctx)
}

// Due returns active alerts scheduled at or before at. A nil userID
// covers every user.
func (r *Repo) Due(ctx context.Context, userID *uuid.UUID, at time.Time) ([]*domain.Alert, error) {
	q := r.Active(sq.LtOrEq{"alert_datetime": at})
	if userID != nil {
		q = q.Where(sq.Eq{"user_id": *userID})
	}
	return q.OrderBy("alert_datetime", "id").All(ctx)
}
