package modulequiz

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

// CreateInput starts tracking a module for a user. A new quiz always starts
// not started; progress and completion only move through their own calls.
type CreateInput struct {
	UserID     uuid.UUID `json:"user_id"     validate:"required"`
	ModuleName string    `json:"module_name" validate:"required,notblank,max=255"`
	Score      int       `json:"m_quizscore" validate:"min=0"`
}

func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

// ScoreInput submits a quiz score.
type ScoreInput struct {
	ID    uuid.UUID `json:"-"`
	Score int       `json:"score" validate:"min=0"`
}

func (i ScoreInput) Validate() error {
	return validation.Struct(i)
}
