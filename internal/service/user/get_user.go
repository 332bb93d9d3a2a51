package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// GetUser returns an active user.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListUsers returns every active user.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListInternal returns users including soft-deleted ones, optionally paged.
func (s *Service) ListInternal(ctx context.Context, input ListInternalInput) ([]*domain.User, error) {
	var (
		users []*domain.User
		err   error
	)
	if input.Limit != nil || input.Skip > 0 {
		users, err = s.users.GetMulti(ctx, input.Skip, input.Limit)
	} else {
		users, err = s.users.All(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list internal users: %w", err)
	}
	return users, nil
}

// SearchUsers filters users by column conditions. Soft-deleted users are
// excluded unless includeDeleted is set.
func (s *Service) SearchUsers(ctx context.Context, filter domain.FilterMap, includeDeleted bool) ([]*domain.User, error) {
	if email, ok := filter["email"]; ok {
		if v, isStr := email.Value.(string); isStr {
			email.Value = domain.NormalizeEmail(v)
			filter["email"] = email
		}
	}

	users, err := s.users.Search(ctx, filter, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}
