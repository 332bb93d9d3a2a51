package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/message"
)

type messageService interface {
	SendMessage(ctx context.Context, input message.SendInput) (*domain.Message, error)
	ListUserMessages(ctx context.Context, userID uuid.UUID) ([]*domain.Message, error)
	Conversation(ctx context.Context, a, b uuid.UUID) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

// MessageHandler serves /messages.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type messageResponse struct {
	*domain.Message
	SenderName   string `json:"sender_name"`
	ReceiverName string `json:"receiver_name"`
}

// Send handles POST /messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input message.SendInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	m, err := h.svc.SendMessage(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// ListByUser handles GET /messages/user/{user_id}.
func (h *MessageHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	messages, err := h.svc.ListUserMessages(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.writeMessages(w, r, messages)
}

// Conversation handles GET /messages/conversation/{a}/{b}.
func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	a, err := pathID(r, "a")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	b, err := pathID(r, "b")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	messages, err := h.svc.Conversation(r.Context(), a, b)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.writeMessages(w, r, messages)
}

// MarkRead handles PATCH /messages/{id}/read.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	m, err := withPathID(r, h.svc.MarkRead)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.log, h.svc.DeleteMessage)
}

func (h *MessageHandler) writeMessages(w http.ResponseWriter, r *http.Request, messages []*domain.Message) {
	ids := make([]uuid.UUID, 0, 2*len(messages))
	for _, m := range messages {
		ids = append(ids, m.SenderID, m.ReceiverID)
	}
	names, err := userNames(r.Context(), ids)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageResponse{
			Message:      m,
			SenderName:   names[m.SenderID],
			ReceiverName: names[m.ReceiverID],
		})
	}
	writeList(w, out)
}
