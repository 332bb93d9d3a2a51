package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/newsletter"
)

type newsletterService interface {
	Subscribe(ctx context.Context, input newsletter.SubscribeInput) (*domain.NewsletterSubscriber, error)
}

// NewsletterHandler serves /newsletter.
type NewsletterHandler struct {
	svc newsletterService
	log *slog.Logger
}

// NewNewsletterHandler creates a NewsletterHandler.
func NewNewsletterHandler(svc newsletterService, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{svc: svc, log: logger.With("handler", "newsletter")}
}

type subscribeResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// Subscribe handles POST /newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var input newsletter.SubscribeInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	sub, err := h.svc.Subscribe(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, subscribeResponse{
		Message: "Subscribed successfully",
		Email:   sub.Email,
	})
}
