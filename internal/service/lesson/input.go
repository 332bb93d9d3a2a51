package lesson

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

type CreateInput struct {
	UserID   uuid.UUID `json:"user_id"   validate:"required"`
	ModuleID uuid.UUID `json:"module_id" validate:"required"`
	Name     string    `json:"name"      validate:"required,notblank,max=255"`
	MediaURL *string   `json:"media_url" validate:"omitempty,url,max=2048"`
}

func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

// QuizScoreInput submits a lesson quiz score on behalf of UserID for the
// lesson ID inside module ModuleID.
type QuizScoreInput struct {
	ID       uuid.UUID `json:"-"`
	UserID   uuid.UUID `json:"user_id"   validate:"required"`
	ModuleID uuid.UUID `json:"module_id" validate:"required"`
	Score    int       `json:"score"     validate:"min=0"`
}

func (i QuizScoreInput) Validate() error {
	return validation.Struct(i)
}
