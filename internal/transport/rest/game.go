package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/game"
)

type gameService interface {
	RecordScore(ctx context.Context, input game.RecordInput) (*domain.GameScore, error)
	ListUserScores(ctx context.Context, userID uuid.UUID) ([]*domain.GameScore, error)
	ListGameScores(ctx context.Context, name string) ([]*domain.GameScore, error)
	Leaderboard(ctx context.Context, input game.LeaderboardInput) ([]domain.LeaderboardEntry, error)
	UserTotal(ctx context.Context, userID uuid.UUID) (domain.GameTotal, error)
}

// GameHandler serves /games.
type GameHandler struct {
	svc gameService
	log *slog.Logger
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(svc gameService, logger *slog.Logger) *GameHandler {
	return &GameHandler{svc: svc, log: logger.With("handler", "game")}
}

// Record handles POST /games.
func (h *GameHandler) Record(w http.ResponseWriter, r *http.Request) {
	var input game.RecordInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	s, err := h.svc.RecordScore(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// ListByUser handles GET /games/user/{user_id}.
func (h *GameHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	scores, err := h.svc.ListUserScores(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, scores)
}

// ListByGame handles GET /games/name/{game_name}.
func (h *GameHandler) ListByGame(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("game_name"))
	if name == "" {
		writeError(w, r, h.log, &domain.InvalidParameterError{Name: "game_name"})
		return
	}
	scores, err := h.svc.ListGameScores(r.Context(), name)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, scores)
}

// Leaderboard handles GET /games/leaderboard?limit.
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var input game.LeaderboardInput
	if limit != nil {
		input.Limit = *limit
	}

	entries, err := h.svc.Leaderboard(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, entries)
}

// UserTotal handles GET /users/{id}/game-total.
func (h *GameHandler) UserTotal(w http.ResponseWriter, r *http.Request) {
	total, err := withPathID(r, h.svc.UserTotal)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, total)
}
