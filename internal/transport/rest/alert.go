package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/alert"
)

type alertService interface {
	CreateAlert(ctx context.Context, input alert.CreateInput) (*domain.Alert, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListUserAlerts(ctx context.Context, userID uuid.UUID) ([]*domain.Alert, error)
	Upcoming(ctx context.Context, input alert.UpcomingInput) ([]*domain.Alert, error)
	DeleteAlert(ctx context.Context, id uuid.UUID) error
}

// AlertHandler serves /alerts.
type AlertHandler struct {
	svc alertService
	log *slog.Logger
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: logger.With("handler", "alert")}
}

// Create handles POST /alerts.
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input alert.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	a, err := h.svc.CreateAlert(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Get handles GET /alerts/{id}.
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := withPathID(r, h.svc.GetAlert)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// ListByUser handles GET /alerts/user/{user_id}.
func (h *AlertHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListUserAlerts)
}

// Upcoming handles GET /alerts/upcoming?current_time.
func (h *AlertHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	h.upcoming(w, r, nil)
}

// UpcomingForUser handles GET /alerts/user/{user_id}/upcoming?current_time.
func (h *AlertHandler) UpcomingForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.upcoming(w, r, &userID)
}

func (h *AlertHandler) upcoming(w http.ResponseWriter, r *http.Request, userID *uuid.UUID) {
	at, err := queryTime(r, "current_time")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	alerts, err := h.svc.Upcoming(r.Context(), alert.UpcomingInput{UserID: userID, At: at})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, alerts)
}

// Delete handles DELETE /alerts/{id}.
func (h *AlertHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.log, h.svc.DeleteAlert)
}

func (h *AlertHandler) list(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) ([]*domain.Alert, error)) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	alerts, err := fn(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, alerts)
}
