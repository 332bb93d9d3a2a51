package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/user"
)

type userService interface {
	CreateUser(ctx context.Context, input user.CreateInput) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListInternal(ctx context.Context, input user.ListInternalInput) ([]*domain.User, error)
	SearchUsers(ctx context.Context, filter domain.FilterMap, includeDeleted bool) ([]*domain.User, error)
	UpdateUser(ctx context.Context, input user.UpdateInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	RestoreUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserHandler serves /users.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type searchUsersRequest struct {
	Filter         domain.FilterMap `json:"filter"`
	IncludeDeleted bool             `json:"include_deleted"`
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input user.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	u, err := h.svc.CreateUser(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, users)
}

// ListInternal handles GET /users/internal?skip&limit. Deleted users are
// included.
func (h *UserHandler) ListInternal(w http.ResponseWriter, r *http.Request) {
	skip, err := queryUint(r, "skip")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := user.ListInternalInput{Limit: limit}
	if skip != nil {
		input.Skip = *skip
	}
	users, err := h.svc.ListInternal(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, users)
}

// Search handles POST /users/search.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchUsersRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	users, err := h.svc.SearchUsers(r.Context(), req.Filter, req.IncludeDeleted)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, users)
}

// Update handles PATCH /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var input user.UpdateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	input.ID = id

	u, err := h.svc.UpdateUser(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /users/{id}/restore.
func (h *UserHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	u, err := h.svc.RestoreUser(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
