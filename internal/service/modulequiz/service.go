package modulequiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type quizRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
	FindByUserAndName(ctx context.Context, userID uuid.UUID, module string) (*domain.ModuleQuiz, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ModuleQuiz, error)
	TotalProgress(ctx context.Context, userID uuid.UUID) (domain.ModuleProgressTotal, error)
	Save(ctx context.Context, q *domain.ModuleQuiz) error
	Update(ctx context.Context, q *domain.ModuleQuiz, patch domain.Patcher) error
	Delete(ctx context.Context, q *domain.ModuleQuiz, hard bool) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// certificateIssuer returns the certificate of a completed quiz, creating it
// when none exists yet.
type certificateIssuer interface {
	IssueForQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Certificate, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service tracks progress through learning modules.
type Service struct {
	log     *slog.Logger
	quizzes quizRepo
	users   userRepo
	certs   certificateIssuer
	tx      txManager
	now     func() time.Time
}

// NewService creates a module quiz service.
func NewService(
	log *slog.Logger,
	quizzes quizRepo,
	users userRepo,
	certs certificateIssuer,
	tx txManager,
) *Service {
	return &Service{
		log:     log.With("service", "modulequiz"),
		quizzes: quizzes,
		users:   users,
		certs:   certs,
		tx:      tx,
		now:     time.Now,
	}
}
