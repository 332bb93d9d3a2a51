package alert

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

type CreateInput struct {
	UserID        uuid.UUID `json:"user_id"        validate:"required"`
	Name          string    `json:"name"           validate:"required,notblank,max=255"`
	Description   *string   `json:"description"    validate:"omitempty,max=2000"`
	AlertDatetime time.Time `json:"alert_datetime" validate:"required"`
}

func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

// UpcomingInput selects due alerts. A nil UserID covers every user and a
// nil At means the current time.
type UpcomingInput struct {
	UserID *uuid.UUID
	At     *time.Time
}
