package newsletter

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/mail"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type subscriberRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	Subscribe(ctx context.Context, s *domain.NewsletterSubscriber) error
}

type mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// Service manages newsletter subscriptions.
type Service struct {
	log         *slog.Logger
	subscribers subscriberRepo
	mailer      mailer
	now         func() time.Time
}

func NewService(log *slog.Logger, subscribers subscriberRepo, mailer mailer) *Service {
	return &Service{
		log:         log.With("service", "newsletter"),
		subscribers: subscribers,
		mailer:      mailer,
		now:         time.Now,
	}
}
