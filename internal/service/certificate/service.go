package certificate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type certificateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error)
	FindByModuleQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Certificate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error)
	Save(ctx context.Context, c *domain.Certificate) error
}

type quizRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type renderer interface {
	Render(ctx context.Context, c domain.CertificateContent) (string, error)
	Path(name string) (string, error)
	Remove(name string) error
}

// Service issues completion certificates.
type Service struct {
	log      *slog.Logger
	certs    certificateRepo
	quizzes  quizRepo
	users    userRepo
	renderer renderer
	now      func() time.Time
}

// NewService creates a certificate service.
func NewService(
	log *slog.Logger,
	certs certificateRepo,
	quizzes quizRepo,
	users userRepo,
	renderer renderer,
) *Service {
	return &Service{
		log:      log.With("service", "certificate"),
		certs:    certs,
		quizzes:  quizzes,
		users:    users,
		renderer: renderer,
		now:      time.Now,
	}
}
