package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	Save(ctx context.Context, c *domain.Comment) error
	Update(ctx context.Context, c *domain.Comment, patch domain.Patcher) error
	Delete(ctx context.Context, c *domain.Comment, hard bool) error
}

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages comments on posts.
type Service struct {
	log      *slog.Logger
	comments commentRepo
	posts    postRepo
	users    userRepo
	tx       txManager
}

// NewService creates a comment service.
func NewService(log *slog.Logger, comments commentRepo, posts postRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:      log.With("service", "comment"),
		comments: comments,
		posts:    posts,
		users:    users,
		tx:       tx,
	}
}
