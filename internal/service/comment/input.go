package comment

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

// CreateInput holds parameters for commenting on a post.
type CreateInput struct {
	PostID  uuid.UUID `json:"post_id" validate:"required"`
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Comment string    `json:"comment" validate:"required,notblank,max=2000"`
}

func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

// UpdateInput edits a comment's text.
type UpdateInput struct {
	ID      uuid.UUID `json:"-"`
	Comment *string   `json:"comment" validate:"required,notblank,max=2000"`
}

func (i UpdateInput) Validate() error {
	return validation.Struct(i)
}

func (i UpdateInput) Patch() domain.Patch {
	return domain.SetIf(domain.Patch{}, "comment", i.Comment)
}
