package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purgerStub struct {
	table string
	n     int64
	err   error
	got   time.Time
}

func (p *purgerStub) Table() string { return p.table }

func (p *purgerStub) HardDeleteDeletedBefore(_ context.Context, t time.Time) (int64, error) {
	p.got = t
	return p.n, p.err
}

func TestPurge(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := &purgerStub{table: "posts", n: 3}
	broken := &purgerStub{table: "users", err: errors.New("fk violation")}
	alerts := &purgerStub{table: "alerts", n: 2}

	total, err := Purge(context.Background(), logger, []Purger{posts, broken, alerts}, cutoff)

	require.Error(t, err)
	assert.ErrorContains(t, err, "users: fk violation")
	assert.Equal(t, int64(5), total)
	for _, p := range []*purgerStub{posts, broken, alerts} {
		assert.True(t, cutoff.Equal(p.got), p.table)
	}
}

func TestSoftDeletePurgers_UsersLast(t *testing.T) {
	purgers := SoftDeletePurgers(nil)

	require.NotEmpty(t, purgers)
	assert.Equal(t, "users", purgers[len(purgers)-1].Table())
	seen := map[string]bool{}
	for _, p := range purgers {
		assert.False(t, seen[p.Table()], "duplicate %s", p.Table())
		seen[p.Table()] = true
	}
	assert.Len(t, seen, 11)
}
