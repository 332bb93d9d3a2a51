package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/comment"
	"github.com/heartmarshall/fairplay-backend/internal/service/post"
)

type postService interface {
	CreatePost(ctx context.Context, input post.CreateInput) (*domain.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	ListUserPosts(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error)
	UpdatePost(ctx context.Context, input post.UpdateInput) (*domain.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	LikePost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	UnlikePost(ctx context.Context, id uuid.UUID) (*domain.Post, error)
}

type commentService interface {
	CreateComment(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListPostComments(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	UpdateComment(ctx context.Context, input comment.UpdateInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	LikeComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
}

// PostHandler serves /posts and /comments.
type PostHandler struct {
	posts    postService
	comments commentService
	log      *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(posts postService, comments commentService, logger *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, comments: comments, log: logger.With("handler", "post")}
}

// Create handles POST /posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input post.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	p, err := h.posts.CreatePost(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.posts.GetPost)
}

// List handles GET /posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, posts)
}

// ListByUser handles GET /users/{id}/posts.
func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	posts, err := h.posts.ListUserPosts(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, posts)
}

// Update handles PATCH /posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var input post.UpdateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	input.ID = id

	p, err := h.posts.UpdatePost(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.log, h.posts.DeletePost)
}

// Like handles POST /posts/{id}/like.
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.posts.LikePost)
}

// Unlike handles POST /posts/{id}/unlike.
func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.posts.UnlikePost)
}

// CreateComment handles POST /comments.
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var input comment.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	c, err := h.comments.CreateComment(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// GetComment handles GET /comments/{id}.
func (h *PostHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	c, err := withPathID(r, h.comments.GetComment)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ListComments handles GET /posts/{id}/comments.
func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := withPathID(r, h.comments.ListPostComments)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, comments)
}

// UpdateComment handles PATCH /comments/{id}.
func (h *PostHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var input comment.UpdateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	input.ID = id

	c, err := h.comments.UpdateComment(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteComment handles DELETE /comments/{id}.
func (h *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.log, h.comments.DeleteComment)
}

// LikeComment handles POST /comments/{id}/like.
func (h *PostHandler) LikeComment(w http.ResponseWriter, r *http.Request) {
	c, err := withPathID(r, h.comments.LikeComment)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *PostHandler) byID(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Post, error)) {
	p, err := withPathID(r, fn)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
