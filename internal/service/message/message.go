package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

func (s *Service) SendMessage(ctx context.Context, input SendInput) (*domain.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), input.SenderID) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.users.GetByID(ctx, input.SenderID); err != nil {
		return nil, fmt.Errorf("get sender: %w", err)
	}
	if _, err := s.users.GetByID(ctx, input.ReceiverID); err != nil {
		return nil, fmt.Errorf("get receiver: %w", err)
	}

	m := &domain.Message{
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Message:    input.Message,
	}
	if err := s.messages.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	s.log.InfoContext(ctx, "message sent",
		slog.String("message_id", m.ID.String()),
		slog.String("sender_id", m.SenderID.String()),
	)
	return m, nil
}

// ListUserMessages returns messages the user sent or received, newest first.
func (s *Service) ListUserMessages(ctx context.Context, userID uuid.UUID) ([]*domain.Message, error) {
	msgs, err := s.messages.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// Conversation returns the messages exchanged between a and b, oldest first.
func (s *Service) Conversation(ctx context.Context, a, b uuid.UUID) ([]*domain.Message, error) {
	msgs, err := s.messages.Conversation(ctx, a, b)
	if err != nil {
		return nil, fmt.Errorf("conversation: %w", err)
	}
	return msgs, nil
}

// MarkRead flags a message as read. Only the receiver may do so when the
// request is authenticated.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), m.ReceiverID) {
		return nil, domain.ErrForbidden
	}
	if m.IsRead {
		return m, nil
	}
	if err := s.messages.Update(ctx, m, domain.Patch{"is_read": true}); err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}
	return m, nil
}

func (s *Service) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), m.SenderID) {
		return domain.ErrForbidden
	}
	if err := s.messages.Delete(ctx, m, false); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
