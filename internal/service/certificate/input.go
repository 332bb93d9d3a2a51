package certificate

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

// CreateInput requests a certificate for a completed module quiz. Empty
// ModuleName and zero Score fall back to the quiz values.
type CreateInput struct {
	ModuleQuizID uuid.UUID `json:"module_quiz_id" validate:"required"`
	UserID       uuid.UUID `json:"user_id"        validate:"required"`
	ModuleName   string    `json:"module_name"    validate:"max=255"`
	Score        int       `json:"score"          validate:"min=0"`
}

func (i CreateInput) Validate() error {
	return validation.Struct(i)
}
