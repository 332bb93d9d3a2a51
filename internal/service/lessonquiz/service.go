package lessonquiz

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type quizRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LessonQuiz, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.LessonQuiz, error)
	FindByUserAndName(ctx context.Context, userID uuid.UUID, lesson string) (*domain.LessonQuiz, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LessonQuiz, error)
	Save(ctx context.Context, q *domain.LessonQuiz) error
	Update(ctx context.Context, q *domain.LessonQuiz, patch domain.Patcher) error
	Delete(ctx context.Context, q *domain.LessonQuiz, hard bool) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service keeps each user's best lesson quiz scores.
type Service struct {
	log     *slog.Logger
	quizzes quizRepo
	users   userRepo
	tx      txManager
}

func NewService(log *slog.Logger, quizzes quizRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:     log.With("service", "lessonquiz"),
		quizzes: quizzes,
		users:   users,
		tx:      tx,
	}
}
