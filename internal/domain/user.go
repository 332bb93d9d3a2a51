package domain

import (
	"strings"

	"github.com/google/uuid"
)

// User is a registered member of the application.
type User struct {
	Base
	FirstName   string  `db:"first_name"   json:"first_name"`
	LastName    string  `db:"last_name"    json:"last_name"`
	Email       string  `db:"email"        json:"email"`
	PhoneNumber *string `db:"phone_number" json:"phone_number"`
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// OwnedBy reports whether actor may act on a resource owned by owner.
// A nil actor is an unauthenticated caller and is not restricted.
func OwnedBy(actor *uuid.UUID, owner uuid.UUID) bool {
	return actor == nil || *actor == owner
}
