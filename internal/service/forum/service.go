package forum

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type forumRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Forum, error)
	ListActive(ctx context.Context) ([]*domain.Forum, error)
	Save(ctx context.Context, f *domain.Forum) error
	Delete(ctx context.Context, f *domain.Forum, hard bool) error
}

type memberRepo interface {
	Find(ctx context.Context, forumID, userID uuid.UUID) (*domain.ForumMember, error)
	Add(ctx context.Context, m *domain.ForumMember) error
	ListByForum(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMember, error)
}

type messageRepo interface {
	Save(ctx context.Context, m *domain.ForumMessage) error
	ListByForum(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMessage, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages forums, their membership and their message boards.
type Service struct {
	log      *slog.Logger
	forums   forumRepo
	members  memberRepo
	messages messageRepo
	users    userRepo
	tx       txManager
}

// NewService creates a forum service.
func NewService(
	log *slog.Logger,
	forums forumRepo,
	members memberRepo,
	messages messageRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      log.With("service", "forum"),
		forums:   forums,
		members:  members,
		messages: messages,
		users:    users,
		tx:       tx,
	}
}
