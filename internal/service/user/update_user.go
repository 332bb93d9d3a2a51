package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

// UpdateUser applies a partial update to an active user.
func (s *Service) UpdateUser(ctx context.Context, input UpdateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), input.ID) {
		return nil, domain.ErrForbidden
	}

	patch := input.Patch()
	var u *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var email *string
		if v, ok := patch["email"].(string); ok {
			email = &v
		}
		if err := s.checkUnique(txCtx, email, trimmed(input.PhoneNumber), input.ID); err != nil {
			return err
		}

		var err error
		u, err = s.users.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if err := s.users.Update(txCtx, u, patch); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", u.ID.String()))
	return u, nil
}

// DeleteUser soft-deletes an active user.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), id) {
		return domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if err := s.users.Delete(ctx, u, false); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}

// RestoreUser reverses a soft delete. Restoring an active user is a no-op.
func (s *Service) RestoreUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByIDAny(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !u.Deleted() {
		return u, nil
	}
	if err := s.users.Restore(ctx, u); err != nil {
		return nil, fmt.Errorf("restore user: %w", err)
	}

	s.log.InfoContext(ctx, "user restored", slog.String("user_id", id.String()))
	return u, nil
}
