package message

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type messageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Message, error)
	Conversation(ctx context.Context, a, b uuid.UUID) ([]*domain.Message, error)
	Save(ctx context.Context, m *domain.Message) error
	Update(ctx context.Context, m *domain.Message, patch domain.Patcher) error
	Delete(ctx context.Context, m *domain.Message, hard bool) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service delivers direct messages between users.
type Service struct {
	log      *slog.Logger
	messages messageRepo
	users    userRepo
}

func NewService(log *slog.Logger, messages messageRepo, users userRepo) *Service {
	return &Service{
		log:      log.With("service", "message"),
		messages: messages,
		users:    users,
	}
}
