package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity gives a record a time-ordered primary key.
// The key is assigned once, on first save, and never changes.
type Identity struct {
	ID uuid.UUID `db:"id" json:"id"`
}

// EntityID returns the record identifier.
func (i *Identity) EntityID() uuid.UUID { return i.ID }

// AssignID sets a UUIDv7 if the record has no identifier yet.
func (i *Identity) AssignID() error {
	if i.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	i.ID = id
	return nil
}

// Timestamps tracks creation and last modification times.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Touch stamps a mutating write. CreatedAt is set only once.
func (t *Timestamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}

// SoftDelete marks a record inactive without removing it.
// DeletedAt is non-nil exactly when IsDeleted is true.
type SoftDelete struct {
	IsDeleted bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at"`
}

// Deleted reports whether the record is soft-deleted.
func (s *SoftDelete) Deleted() bool { return s.IsDeleted }

// Active reports whether the record is visible to regular reads.
func (s *SoftDelete) Active() bool { return !s.IsDeleted }

// Base composes the capabilities shared by most records.
type Base struct {
	Identity
	Timestamps
	SoftDelete
}
