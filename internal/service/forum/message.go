package forum

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// PostMessage adds a message to an active forum. Promotional content is
// rejected with a conflict before anything is written.
func (s *Service) PostMessage(ctx context.Context, input PostMessageInput) (*domain.ForumMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.forums.GetByID(ctx, input.ForumID); err != nil {
		return nil, fmt.Errorf("get forum: %w", err)
	}
	if err := domain.CheckPromotional(input.Message); err != nil {
		s.log.InfoContext(ctx, "forum message rejected",
			slog.String("forum_id", input.ForumID.String()),
			slog.String("user_id", input.UserID.String()),
		)
		return nil, err
	}

	m := &domain.ForumMessage{
		ForumID:  input.ForumID,
		UserID:   input.UserID,
		Message:  strings.TrimSpace(input.Message),
		ImageURL: input.ImageURL,
	}
	if err := s.messages.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save forum message: %w", err)
	}
	return m, nil
}

// ListMessages returns a forum's messages, oldest first.
func (s *Service) ListMessages(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMessage, error) {
	messages, err := s.messages.ListByForum(ctx, forumID)
	if err != nil {
		return nil, fmt.Errorf("list forum messages: %w", err)
	}
	return messages, nil
}
