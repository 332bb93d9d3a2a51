package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

// CreateComment attaches a comment to an active post.
func (s *Service) CreateComment(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), input.UserID) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.posts.GetByID(ctx, input.PostID); err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	c := &domain.Comment{
		PostID:  input.PostID,
		UserID:  input.UserID,
		Comment: strings.TrimSpace(input.Comment),
	}
	if err := s.comments.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("comment_id", c.ID.String()),
		slog.String("post_id", c.PostID.String()),
	)
	return c, nil
}

func (s *Service) GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

// ListPostComments returns the active comments of a post.
func (s *Service) ListPostComments(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *Service) UpdateComment(ctx context.Context, input UpdateInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.comments.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), c.UserID) {
		return nil, domain.ErrForbidden
	}
	if err := s.comments.Update(ctx, c, input.Patch()); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

func (s *Service) DeleteComment(ctx context.Context, id uuid.UUID) error {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), c.UserID) {
		return domain.ErrForbidden
	}
	if err := s.comments.Delete(ctx, c, false); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted", slog.String("comment_id", id.String()))
	return nil
}

// LikeComment increments the like counter under a row lock.
func (s *Service) LikeComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var c *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		c, err = s.comments.LockByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock comment: %w", err)
		}
		if err := s.comments.Update(txCtx, c, domain.Patch{"like_count": c.LikeCount + 1}); err != nil {
			return fmt.Errorf("update likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
