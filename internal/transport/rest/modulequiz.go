package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/modulequiz"
)

type moduleQuizService interface {
	CreateModuleQuiz(ctx context.Context, input modulequiz.CreateInput) (*domain.ModuleQuiz, error)
	GetModuleQuiz(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
	ListUserModuleQuizzes(ctx context.Context, userID uuid.UUID) ([]*domain.ModuleQuiz, error)
	DeleteModuleQuiz(ctx context.Context, id uuid.UUID) error
	TotalProgress(ctx context.Context, userID uuid.UUID) (domain.ModuleProgressTotal, error)
	IncrementProgress(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
	IncrementCompleted(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error)
	UpdateScore(ctx context.Context, input modulequiz.ScoreInput) (*domain.ModuleQuiz, error)
}

// ModuleQuizHandler serves /module-quizzes.
type ModuleQuizHandler struct {
	svc moduleQuizService
	log *slog.Logger
}

// NewModuleQuizHandler creates a ModuleQuizHandler.
func NewModuleQuizHandler(svc moduleQuizService, logger *slog.Logger) *ModuleQuizHandler {
	return &ModuleQuizHandler{svc: svc, log: logger.With("handler", "module_quiz")}
}

// Create handles POST /module-quizzes. An existing quiz for the same user
// and module is returned instead of a new one.
func (h *ModuleQuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input modulequiz.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	q, err := h.svc.CreateModuleQuiz(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

// Get handles GET /module-quizzes/{id}.
func (h *ModuleQuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.one(w, r, h.svc.GetModuleQuiz)
}

// ListByUser handles GET /module-quizzes/user/{user_id}.
func (h *ModuleQuizHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	quizzes, err := h.svc.ListUserModuleQuizzes(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, quizzes)
}

// Delete handles DELETE /module-quizzes/{id}.
func (h *ModuleQuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.log, h.svc.DeleteModuleQuiz)
}

// TotalProgress handles GET /users/{id}/module-progress.
func (h *ModuleQuizHandler) TotalProgress(w http.ResponseWriter, r *http.Request) {
	total, err := withPathID(r, h.svc.TotalProgress)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, total)
}

// IncrementProgress handles PATCH /module-quizzes/{id}/progress.
func (h *ModuleQuizHandler) IncrementProgress(w http.ResponseWriter, r *http.Request) {
	h.one(w, r, h.svc.IncrementProgress)
}

// IncrementCompleted handles PATCH /module-quizzes/{id}/completed.
func (h *ModuleQuizHandler) IncrementCompleted(w http.ResponseWriter, r *http.Request) {
	h.one(w, r, h.svc.IncrementCompleted)
}

// UpdateScore handles PATCH /module-quizzes/{id}/score.
func (h *ModuleQuizHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req scoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	score, err := req.value()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	q, err := h.svc.UpdateScore(r.Context(), modulequiz.ScoreInput{ID: id, Score: score})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *ModuleQuizHandler) one(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.ModuleQuiz, error)) {
	q, err := withPathID(r, fn)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}
