package forum

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

// CreateForumInput holds parameters for opening a forum.
type CreateForumInput struct {
	ForumName   string  `json:"forum_name"  validate:"required,notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,max=2048"`
}

func (i CreateForumInput) Validate() error {
	return validation.Struct(i)
}

// AddMemberInput joins a user to a forum.
type AddMemberInput struct {
	ForumID uuid.UUID `json:"forum_id" validate:"required"`
	UserID  uuid.UUID `json:"user_id"  validate:"required"`
}

func (i AddMemberInput) Validate() error {
	return validation.Struct(i)
}

// PostMessageInput holds a message posted to a forum.
type PostMessageInput struct {
	ForumID  uuid.UUID `json:"forum_id"  validate:"required"`
	UserID   uuid.UUID `json:"user_id"   validate:"required"`
	Message  string    `json:"message"   validate:"required,notblank,max=5000"`
	ImageURL *string   `json:"image_url" validate:"omitempty,max=2048"`
}

func (i PostMessageInput) Validate() error {
	return validation.Struct(i)
}
