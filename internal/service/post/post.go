package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

// CreatePost publishes a post for an active user.
func (s *Service) CreatePost(ctx context.Context, input CreateInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), input.UserID) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	p := &domain.Post{
		UserID:      input.UserID,
		Description: strings.TrimSpace(input.Description),
		Hashtag:     input.Hashtag,
		Photo:       input.Photo,
	}
	if err := s.posts.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("post_id", p.ID.String()),
		slog.String("user_id", p.UserID.String()),
	)
	return p, nil
}

// GetPost returns an active post.
func (s *Service) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// ListPosts returns the active feed.
func (s *Service) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListUserPosts returns the active posts of one author.
func (s *Service) ListUserPosts(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error) {
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}
	return posts, nil
}

// UpdatePost applies a partial update. Only the author may edit when the
// request is authenticated.
func (s *Service) UpdatePost(ctx context.Context, input UpdateInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.posts.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), p.UserID) {
		return nil, domain.ErrForbidden
	}
	if err := s.posts.Update(ctx, p, input.Patch()); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

// DeletePost soft-deletes a post.
func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), p.UserID) {
		return domain.ErrForbidden
	}
	if err := s.posts.Delete(ctx, p, false); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	s.log.InfoContext(ctx, "post deleted", slog.String("post_id", id.String()))
	return nil
}

// LikePost increments the like counter.
func (s *Service) LikePost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.adjustLikes(ctx, id, 1)
}

// UnlikePost decrements the like counter, never below zero.
func (s *Service) UnlikePost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.adjustLikes(ctx, id, -1)
}

func (s *Service) adjustLikes(ctx context.Context, id uuid.UUID, delta int) (*domain.Post, error) {
	var p *domain.Post
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.posts.LockByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock post: %w", err)
		}
		likes := max(p.LikeCount+delta, 0)
		if likes == p.LikeCount {
			return nil
		}
		if err := s.posts.Update(txCtx, p, domain.Patch{"like_count": likes}); err != nil {
			return fmt.Errorf("update likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
