package lesson

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type lessonRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Lesson, error)
	Save(ctx context.Context, l *domain.Lesson) error
	Update(ctx context.Context, l *domain.Lesson, patch domain.Patcher) error
	Delete(ctx context.Context, l *domain.Lesson, hard bool) error
}

type quizRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages lessons inside learning modules.
type Service struct {
	log     *slog.Logger
	lessons lessonRepo
	quizzes quizRepo
	users   userRepo
	tx      txManager
}

// NewService creates a lesson service.
func NewService(log *slog.Logger, lessons lessonRepo, quizzes quizRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:     log.With("service", "lesson"),
		lessons: lessons,
		quizzes: quizzes,
		users:   users,
		tx:      tx,
	}
}
