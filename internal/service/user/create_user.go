package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// CreateUser registers a user. Email and phone number must be unused, soft-deleted
// accounts included.
func (s *Service) CreateUser(ctx context.Context, input CreateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u := &domain.User{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Email:       domain.NormalizeEmail(input.Email),
		PhoneNumber: trimmed(input.PhoneNumber),
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkUnique(txCtx, &u.Email, u.PhoneNumber, uuid.Nil); err != nil {
			return err
		}
		if err := s.users.Save(txCtx, u); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID.String()),
	)

	return u, nil
}

// checkUnique fails with a duplicate error when email or phone belongs to a
// user other than self.
func (s *Service) checkUnique(ctx context.Context, email, phone *string, self uuid.UUID) error {
	if email != nil && *email != "" {
		existing, err := s.users.FindByEmail(ctx, *email)
		if err != nil {
			return fmt.Errorf("find user by email: %w", err)
		}
		if existing != nil && existing.ID != self {
			return domain.WithDetail(domain.ErrAlreadyExists, "Email is already taken")
		}
	}

	if phone != nil && *phone != "" {
		existing, err := s.users.FindByPhone(ctx, *phone)
		if err != nil {
			return fmt.Errorf("find user by phone: %w", err)
		}
		if existing != nil && existing.ID != self {
			return domain.WithDetail(domain.ErrAlreadyExists, "Phone number is already taken")
		}
	}

	return nil
}
