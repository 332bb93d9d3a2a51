package user

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

// CreateInput holds parameters for registering a user.
type CreateInput struct {
	FirstName   string  `json:"first_name"   validate:"required,notblank,max=100"`
	LastName    string  `json:"last_name"    validate:"required,notblank,max=100"`
	Email       string  `json:"email"        validate:"required,email,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,notblank,max=32"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

// UpdateInput holds a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	ID          uuid.UUID `json:"-"`
	FirstName   *string   `json:"first_name"   validate:"omitempty,notblank,max=100"`
	LastName    *string   `json:"last_name"    validate:"omitempty,notblank,max=100"`
	Email       *string   `json:"email"        validate:"omitempty,email,max=255"`
	PhoneNumber *string   `json:"phone_number" validate:"omitempty,notblank,max=32"`
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	if err := validation.Struct(i); err != nil {
		return err
	}
	if i.FirstName == nil && i.LastName == nil && i.Email == nil && i.PhoneNumber == nil {
		return domain.NewValidationError("input", "at least one field must be provided")
	}
	return nil
}

// Patch converts the input into a column patch.
func (i UpdateInput) Patch() domain.Patch {
	p := domain.Patch{}
	domain.SetIf(p, "first_name", trimmed(i.FirstName))
	domain.SetIf(p, "last_name", trimmed(i.LastName))
	if i.Email != nil {
		p.Set("email", domain.NormalizeEmail(*i.Email))
	}
	domain.SetIf(p, "phone_number", trimmed(i.PhoneNumber))
	return p
}

// ListInternalInput pages over every user, deleted ones included.
// A nil Limit returns every row after Skip.
type ListInternalInput struct {
	Skip  uint64
	Limit *uint64
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
