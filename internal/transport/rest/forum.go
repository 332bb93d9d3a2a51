package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/forum"
)

type forumService interface {
	CreateForum(ctx context.Context, input forum.CreateForumInput) (*domain.Forum, error)
	GetForum(ctx context.Context, id uuid.UUID) (*domain.Forum, error)
	ListForums(ctx context.Context) ([]*domain.Forum, error)
	DeleteForum(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, input forum.AddMemberInput) (*domain.ForumMember, error)
	ListMembers(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMember, error)
	PostMessage(ctx context.Context, input forum.PostMessageInput) (*domain.ForumMessage, error)
	ListMessages(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMessage, error)
}

// ForumHandler serves /forums.
type ForumHandler struct {
	svc forumService
	log *slog.Logger
}

// NewForumHandler creates a ForumHandler.
func NewForumHandler(svc forumService, logger *slog.Logger) *ForumHandler {
	return &ForumHandler{svc: svc, log: logger.With("handler", "forum")}
}

type forumMessageResponse struct {
	*domain.ForumMessage
	UserName string `json:"user_name"`
}

// Create handles POST /forums.
func (h *ForumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input forum.CreateForumInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	f, err := h.svc.CreateForum(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// Get handles GET /forums/{id}.
func (h *ForumHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := withPathID(r, h.svc.GetForum)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// List handles GET /forums.
func (h *ForumHandler) List(w http.ResponseWriter, r *http.Request) {
	forums, err := h.svc.ListForums(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, forums)
}

// Delete handles DELETE /forums/{id}.
func (h *ForumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.log, h.svc.DeleteForum)
}

// AddMember handles POST /forums/members.
func (h *ForumHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var input forum.AddMemberInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	m, err := h.svc.AddMember(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// ListMembers handles GET /forums/{id}/members.
func (h *ForumHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := withPathID(r, h.svc.ListMembers)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, members)
}

// PostMessage handles POST /forums/messages.
func (h *ForumHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var input forum.PostMessageInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	m, err := h.svc.PostMessage(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// ListMessages handles GET /forums/{id}/messages. Each message carries its
// author's display name.
func (h *ForumHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := withPathID(r, h.svc.ListMessages)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.UserID)
	}
	names, err := userNames(r.Context(), ids)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]forumMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, forumMessageResponse{ForumMessage: m, UserName: names[m.UserID]})
	}
	writeList(w, out)
}
