package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDAny(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListActive(ctx context.Context) ([]*domain.User, error)
	All(ctx context.Context) ([]*domain.User, error)
	GetMulti(ctx context.Context, skip uint64, limit *uint64) ([]*domain.User, error)
	Search(ctx context.Context, filter domain.FilterMap, includeDeleted bool) ([]*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	Save(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User, patch domain.Patcher) error
	Delete(ctx context.Context, u *domain.User, hard bool) error
	Restore(ctx context.Context, u *domain.User) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user account operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tx:    tx,
	}
}
