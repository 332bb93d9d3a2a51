package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListActive(ctx context.Context) ([]*domain.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error)
	Save(ctx context.Context, p *domain.Post) error
	Update(ctx context.Context, p *domain.Post, patch domain.Patcher) error
	Delete(ctx context.Context, p *domain.Post, hard bool) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the post feed.
type Service struct {
	log   *slog.Logger
	posts postRepo
	users userRepo
	tx    txManager
}

// NewService creates a post service.
func NewService(log *slog.Logger, posts postRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:   log.With("service", "post"),
		posts: posts,
		users: users,
		tx:    tx,
	}
}
