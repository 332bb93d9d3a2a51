// Package testutil holds helpers for SQL-level unit tests built on pgxmock.
package testutil

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
)

// NewMockQuerier returns a pgxmock pool that is closed when the test ends.
// The pool satisfies postgres.Querier and postgres.Beginner.
func NewMockQuerier(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testutil: create pgxmock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	return mock
}

// ExpectationsWereMet fails the test when queued expectations were not used.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled pgxmock expectations: %v", err)
	}
}
