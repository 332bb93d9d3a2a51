// Package game implements the game score repository and its aggregates.
package game

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides game score persistence.
type Repo struct {
	*base.Base[domain.GameScore]
}

// New creates a game score repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.GameScore](db, base.Config{Table: "game_scores", Entity: "game score"}, opts...),
	}
}

// CumulativeTotal returns the highest running total recorded for a user,
// or 0 before the first score.
func (r *Repo) CumulativeTotal(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int
	q := base.Builder().
		Select("COALESCE(MAX(cumulative_total), 0)").
		From(r.Table()).
		Where(sq.Eq{"user_id": userID}).
		Where(base.NotDeleted())
	if err := r.Scalar(ctx, &total, q); err != nil {
		return 0, err
	}
	return total, nil
}

// ListByUser returns a user's scores in the order they were recorded.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.GameScore, error) {
	return r.Active(sq.Eq{"user_id": userID}).OrderBy("created_at", "id").All(ctx)
}

// ListByGame returns the scores of one game, best first.
func (r *Repo) ListByGame(ctx context.Context, name string) ([]*domain.GameScore, error) {
	return r.Active(sq.Eq{"game_name": name}).OrderBy("score DESC", "created_at").All(ctx)
}

// Leaderboard ranks users by the sum of their active scores. Ties are broken
// by user id so the order is stable. A limit of 0 returns every user.
func (r *Repo) Leaderboard(ctx context.Context, limit uint64) ([]domain.LeaderboardEntry, error) {
	q := base.Builder().
		Select(
			"g.user_id",
			"u.first_name",
			"SUM(g.score) AS total_score",
			"COUNT(g.id) AS games_played",
		).
		From(r.Table()+" g").
		Join("users u ON u.id = g.user_id").
		Where(sq.Eq{"g.is_deleted": false}).
		GroupBy("g.user_id", "u.first_name").
		OrderBy("total_score DESC", "g.user_id")
	if limit > 0 {
		q = q.Limit(limit)
	}

	out := []domain.LeaderboardEntry{}
	if err := r.Select(ctx, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// UserTotal aggregates a user's active scores.
func (r *Repo) UserTotal(ctx context.Context, userID uuid.UUID) (domain.GameTotal, error) {
	var total domain.GameTotal
	q := base.Builder().
		Select("COALESCE(SUM(score), 0) AS total_score", "COUNT(id) AS games_played").
		From(r.Table()).
		Where(sq.Eq{"user_id": userID}).
		Where(base.NotDeleted())
	if err := r.Scalar(ctx, &total, q); err != nil {
		return domain.GameTotal{}, err
	}
	return total, nil
}
