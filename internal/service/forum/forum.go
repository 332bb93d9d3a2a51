package forum

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// CreateForum opens a new forum.
func (s *Service) CreateForum(ctx context.Context, input CreateForumInput) (*domain.Forum, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := &domain.Forum{
		ForumName:   strings.TrimSpace(input.ForumName),
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := s.forums.Save(ctx, f); err != nil {
		return nil, fmt.Errorf("save forum: %w", err)
	}

	s.log.InfoContext(ctx, "forum created",
		slog.String("forum_id", f.ID.String()),
		slog.String("name", f.ForumName),
	)
	return f, nil
}

func (s *Service) GetForum(ctx context.Context, id uuid.UUID) (*domain.Forum, error) {
	f, err := s.forums.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get forum: %w", err)
	}
	return f, nil
}

func (s *Service) ListForums(ctx context.Context) ([]*domain.Forum, error) {
	forums, err := s.forums.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forums: %w", err)
	}
	return forums, nil
}

// DeleteForum soft-deletes a forum. Members and messages stay in place.
func (s *Service) DeleteForum(ctx context.Context, id uuid.UUID) error {
	f, err := s.forums.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get forum: %w", err)
	}
	if err := s.forums.Delete(ctx, f, false); err != nil {
		return fmt.Errorf("delete forum: %w", err)
	}

	s.log.InfoContext(ctx, "forum deleted", slog.String("forum_id", id.String()))
	return nil
}
