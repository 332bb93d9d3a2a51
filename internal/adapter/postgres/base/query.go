package base

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// ErrMultipleRows is returned by OneOrNone when more than one row matches.
var ErrMultipleRows = errors.New("multiple rows matched")

// Query is a lazily executed select over a Base table. Each modifier returns
// a new Query; the receiver is left untouched.
type Query[T any] struct {
	base *Base[T]
	sb   sq.SelectBuilder
	err  error
}

// Where adds predicates to the query.
func (q Query[T]) Where(preds ...sq.Sqlizer) Query[T] {
	for _, p := range preds {
		q.sb = q.sb.Where(p)
	}
	return q
}

// OrderBy appends ORDER BY clauses such as "created_at DESC".
func (q Query[T]) OrderBy(clauses ...string) Query[T] {
	q.sb = q.sb.OrderBy(clauses...)
	return q
}

// Limit caps the number of rows returned.
func (q Query[T]) Limit(n uint64) Query[T] {
	q.sb = q.sb.Limit(n)
	return q
}

// Offset skips the first n rows.
func (q Query[T]) Offset(n uint64) Query[T] {
	q.sb = q.sb.Offset(n)
	return q
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
func (q Query[T]) ForUpdate() Query[T] {
	q.sb = q.sb.Suffix("FOR UPDATE")
	return q
}

// ToSql renders the query.
func (q Query[T]) ToSql() (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}
	return q.sb.ToSql()
}

// All returns every matching row. No match yields an empty slice.
func (q Query[T]) All(ctx context.Context) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", q.base.cfg.Entity, err)
	}

	var out []*T
	if err := pgxscan.Select(ctx, q.base.Q(ctx), &out, sql, args...); err != nil {
		return nil, fmt.Errorf("%s: select: %w", q.base.cfg.Entity, err)
	}
	if out == nil {
		out = []*T{}
	}
	return out, nil
}

// OneOrNone returns the single matching row, nil when nothing matches, and
// ErrMultipleRows when the predicates are not selective enough.
func (q Query[T]) OneOrNone(ctx context.Context) (*T, error) {
	rows, err := q.Limit(2).All(ctx)
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return rows[0], nil
	default:
		return nil, fmt.Errorf("%s: %w", q.base.cfg.Entity, ErrMultipleRows)
	}
}

// OneOrNotFound is OneOrNone for lookups whose callers expect the row to
// exist: an absent row becomes domain.ErrNotFound naming key.
func (q Query[T]) OneOrNotFound(ctx context.Context, key any) (*T, error) {
	e, err := q.OneOrNone(ctx)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%s %v: %w", q.base.cfg.Entity, key, domain.ErrNotFound)
	}
	return e, nil
}

// First returns the first row in query order, or nil when nothing matches.
func (q Query[T]) First(ctx context.Context) (*T, error) {
	rows, err := q.Limit(1).All(ctx)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}
