package post

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

// CreateInput holds parameters for publishing a post.
type CreateInput struct {
	UserID      uuid.UUID `json:"user_id"     validate:"required"`
	Description string    `json:"description" validate:"required,notblank,max=5000"`
	Hashtag     *string   `json:"hashtag"     validate:"omitempty,max=255"`
	Photo       *string   `json:"photo"       validate:"omitempty,max=2048"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

// UpdateInput holds a partial update of a post.
type UpdateInput struct {
	ID          uuid.UUID `json:"-"`
	Description *string   `json:"description" validate:"omitempty,notblank,max=5000"`
	Hashtag     *string   `json:"hashtag"     validate:"omitempty,max=255"`
	Photo       *string   `json:"photo"       validate:"omitempty,max=2048"`
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	if err := validation.Struct(i); err != nil {
		return err
	}
	if i.Description == nil && i.Hashtag == nil && i.Photo == nil {
		return domain.NewValidationError("input", "at least one field must be provided")
	}
	return nil
}

// Patch converts the input into a column patch.
func (i UpdateInput) Patch() domain.Patch {
	p := domain.Patch{}
	domain.SetIf(p, "description", i.Description)
	if i.Hashtag != nil {
		p.Set("hashtag", emptyToNil(*i.Hashtag))
	}
	if i.Photo != nil {
		p.Set("photo", emptyToNil(*i.Photo))
	}
	return p
}

// emptyToNil lets clients clear an optional column by sending "".
func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
