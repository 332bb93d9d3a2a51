package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type scoreRepo interface {
	CumulativeTotal(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.GameScore, error)
	ListByGame(ctx context.Context, name string) ([]*domain.GameScore, error)
	Leaderboard(ctx context.Context, limit uint64) ([]domain.LeaderboardEntry, error)
	UserTotal(ctx context.Context, userID uuid.UUID) (domain.GameTotal, error)
	Save(ctx context.Context, g *domain.GameScore) error
}

type userRepo interface {
	LockByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records game results and ranks players.
type Service struct {
	log    *slog.Logger
	scores scoreRepo
	users  userRepo
	tx     txManager
}

func NewService(log *slog.Logger, scores scoreRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:    log.With("service", "game"),
		scores: scores,
		users:  users,
		tx:     tx,
	}
}
