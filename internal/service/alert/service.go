package alert

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type alertRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Alert, error)
	Due(ctx context.Context, userID *uuid.UUID, at time.Time) ([]*domain.Alert, error)
	Save(ctx context.Context, a *domain.Alert) error
	Delete(ctx context.Context, a *domain.Alert, hard bool) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service schedules user reminders.
type Service struct {
	log    *slog.Logger
	alerts alertRepo
	users  userRepo
	now    func() time.Time
}

func NewService(log *slog.Logger, alerts alertRepo, users userRepo) *Service {
	return &Service{
		log:    log.With("service", "alert"),
		alerts: alerts,
		users:  users,
		now:    time.Now,
	}
}
