package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts an active user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		FirstName: "Test",
		LastName:  "User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
	}
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, first_name, last_name, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.FirstName, user.LastName, user.Email, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedModuleQuiz inserts a fresh module quiz owned by userID.
func SeedModuleQuiz(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.ModuleQuiz {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	q := domain.ModuleQuiz{UserID: userID, ModuleName: name}
	q.ID = uuid.New()
	q.CreatedAt = now
	q.UpdatedAt = now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO module_quizzes (id, user_id, module_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		q.ID, q.UserID, q.ModuleName, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedModuleQuiz: %v", err)
	}
	return q
}
