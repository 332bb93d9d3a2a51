// Package message implements the direct message repository.
package message

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides message persistence.
type Repo struct {
	*base.Base[domain.Message]
}

// New creates a message repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.Message](db, base.Config{Table: "messages", Entity: "message"}, opts...),
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	return r.GetActive(ctx, id)
}

// ListForUser returns every active message a user sent or received, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Message, error) {
	return r.Active(sq.Or{
		sq.Eq{"sender_id": userID},
		sq.Eq{"receiver_id": userID},
	}).OrderBy("created_at DESC", "id").All(ctx)
}

// Conversation returns the messages exchanged between a and b in either
// direction, oldest first.
func (r *Repo) Conversation(ctx context.Context, a, b uuid.UUID) ([]*domain.Message, error) {
	return r.Active(sq.Or{
		sq.Eq{"sender_id": a, "receiver_id": b},
		sq.Eq{"sender_id": b, "receiver_id": a},
	}).OrderBy("created_at", "id").All(ctx)
}
