package domain

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is issued once per completed module quiz.
type Certificate struct {
	Base
	UserID         uuid.UUID `db:"user_id"         json:"user_id"`
	ModuleQuizID   uuid.UUID `db:"module_quiz_id"  json:"module_quiz_id"`
	ModuleName     string    `db:"module_name"     json:"module_name"`
	Score          int       `db:"score"           json:"score"`
	CertificateURL *string   `db:"certificate_url" json:"certificate_url"`
}

// NewsletterSubscriber is keyed by email and has no surrogate id.
type NewsletterSubscriber struct {
	Email        string    `db:"email"         json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}

// CertificateContent is what gets printed on a certificate.
type CertificateContent struct {
	CertificateID uuid.UUID
	UserID        uuid.UUID
	FullName      string
	ModuleName    string
	Score         int
	IssuedAt      time.Time
}
