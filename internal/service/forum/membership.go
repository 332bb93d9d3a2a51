package forum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

const alreadyMember = "User is already a member of this forum"

// AddMember joins an active user to an active forum. A second join of the
// same pair fails with a conflict, whether caught by the lookup or by the
// unique index when two joins race.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*domain.ForumMember, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.forums.GetByID(ctx, input.ForumID); err != nil {
		return nil, fmt.Errorf("get forum: %w", err)
	}
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	existing, err := s.members.Find(ctx, input.ForumID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	if existing != nil {
		return nil, domain.WithDetail(domain.ErrConflict, alreadyMember)
	}

	m := &domain.ForumMember{ForumID: input.ForumID, UserID: input.UserID}
	if err := s.members.Add(ctx, m); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.WithDetail(domain.ErrConflict, alreadyMember)
		}
		return nil, fmt.Errorf("add member: %w", err)
	}

	s.log.InfoContext(ctx, "forum member added",
		slog.String("forum_id", m.ForumID.String()),
		slog.String("user_id", m.UserID.String()),
	)
	return m, nil
}

// ListMembers returns the members of a forum.
func (s *Service) ListMembers(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMember, error) {
	members, err := s.members.ListByForum(ctx, forumID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}
