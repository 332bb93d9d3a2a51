package message

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

type SendInput struct {
	SenderID   uuid.UUID `json:"sender_id"   validate:"required"`
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Message    string    `json:"message"     validate:"required,notblank,max=5000"`
}

func (i SendInput) Validate() error {
	return validation.Struct(i)
}
