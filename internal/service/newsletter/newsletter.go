package newsletter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/mail"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

var errAlreadySubscribed = domain.WithDetail(domain.ErrAlreadyExists, "This email is already subscribed.")

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

func (i SubscribeInput) Validate() error {
	return validation.Struct(i)
}

// Subscribe adds an email to the newsletter and sends a welcome mail. When
// the mail fails the subscription stays and a *domain.PartialError is
// returned.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) (*domain.NewsletterSubscriber, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	email := input.Email

	existing, err := s.subscribers.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	if existing != nil {
		return nil, errAlreadySubscribed
	}

	sub := &domain.NewsletterSubscriber{Email: email, SubscribedAt: s.now()}
	if err := s.subscribers.Subscribe(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, errAlreadySubscribed
		}
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	s.log.InfoContext(ctx, "newsletter subscription", slog.String("email", email))

	if err := s.mailer.Send(ctx, welcomeMessage(email)); err != nil {
		s.log.ErrorContext(ctx, "welcome mail failed",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return sub, &domain.PartialError{Op: "send welcome mail", Err: err}
	}
	return sub, nil
}

func welcomeMessage(email string) mail.Message {
	return mail.Message{
		To:      email,
		Subject: "Welcome to the FairPlay newsletter",
		Text: "Thanks for subscribing to the FairPlay newsletter. " +
			"You will hear from us about new modules, games and financial literacy tips.",
		HTML: "<p>Thanks for subscribing to the <strong>FairPlay</strong> newsletter.</p>" +
			"<p>You will hear from us about new modules, games and financial literacy tips.</p>",
	}
}
