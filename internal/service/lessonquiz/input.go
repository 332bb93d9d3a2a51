package lessonquiz

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

type CreateInput struct {
	UserID     uuid.UUID `json:"user_id"     validate:"required"`
	LessonName string    `json:"lesson_name" validate:"required,notblank,max=255"`
	Score      int       `json:"l_quizscore" validate:"min=0"`
}

func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

type ScoreInput struct {
	ID    uuid.UUID `json:"-"`
	Score int       `json:"score" validate:"min=0"`
}

func (i ScoreInput) Validate() error {
	return validation.Struct(i)
}
