package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	unknown := errors.New("something unexpected")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNot []error
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantIs: domain.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan row: %w", pgx.ErrNoRows), wantIs: domain.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantIs: domain.ErrAlreadyExists},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), wantIs: domain.ErrAlreadyExists},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantIs: domain.ErrNotFound},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantIs: domain.ErrValidation},
		{
			name:    "deadline passes through",
			err:     context.DeadlineExceeded,
			wantIs:  context.DeadlineExceeded,
			wantNot: []error{domain.ErrNotFound},
		},
		{
			name:    "canceled passes through",
			err:     context.Canceled,
			wantIs:  context.Canceled,
			wantNot: []error{domain.ErrNotFound},
		},
		{
			name:    "unknown pg code",
			err:     &pgconn.PgError{Code: "42P01"},
			wantNot: []error{domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrValidation},
		},
		{name: "unknown error", err: unknown, wantIs: unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err, "post", id)
			assert.Error(t, got)
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
			for _, not := range tt.wantNot {
				assert.NotErrorIs(t, got, not)
			}
			assert.Contains(t, got.Error(), fmt.Sprintf("post %s:", id))
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil, "post", uuid.New()))
}

func TestMapError_StringKey(t *testing.T) {
	t.Parallel()

	got := MapError(&pgconn.PgError{Code: "23505"}, "newsletter subscriber", "a@b.com")
	assert.EqualError(t, got, "newsletter subscriber a@b.com: already exists")
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "forum_members_forum_user_key"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "forum_members_forum_user_key"))
	assert.False(t, IsUniqueViolation(err, "users_email_key"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))
}
