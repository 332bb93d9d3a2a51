// Package base provides the generic repository shared by every persisted
// record: filtered reads, upserts, partial updates, soft delete and restore.
package base

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

const (
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
	colIsDeleted = "is_deleted"
	colDeletedAt = "deleted_at"
)

// ErrNotSoftDeletable is returned by soft delete and restore on records
// without the soft-delete capability.
var ErrNotSoftDeletable = errors.New("record does not support soft delete")

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Config describes the table backing a record type.
type Config struct {
	Table string
	// Entity names the record in error messages. Defaults to Table.
	Entity string
	// PrimaryKey defaults to "id".
	PrimaryKey string
}

// Option customizes a Base.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for timestamps and deletion.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

type idAssigner interface{ AssignID() error }

type toucher interface{ Touch(now time.Time) }

// Base is a repository for records of type T. T is a struct whose db tags
// name its columns; embedded domain capability structs are flattened.
type Base[T any] struct {
	db       postgres.Querier
	cfg      Config
	fields   []field
	byColumn map[string]field
	columns  []string
	now      func() time.Time
}

// New builds a Base for T backed by db. Calls made with a transaction in
// their context use that transaction instead.
func New[T any](db postgres.Querier, cfg Config, opts ...Option) (*Base[T], error) {
	if cfg.Table == "" {
		return nil, errors.New("base: table name is required")
	}
	if cfg.PrimaryKey == "" {
		cfg.PrimaryKey = "id"
	}
	if cfg.Entity == "" {
		cfg.Entity = cfg.Table
	}

	fields, err := mapFields(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Base[T]{
		db:       db,
		cfg:      cfg,
		fields:   fields,
		byColumn: make(map[string]field, len(fields)),
		columns:  make([]string, 0, len(fields)),
		now:      o.now,
	}
	for _, f := range fields {
		b.byColumn[f.column] = f
		b.columns = append(b.columns, f.column)
	}

	if _, ok := b.byColumn[cfg.PrimaryKey]; !ok {
		return nil, fmt.Errorf("base: %s has no primary key column %q", cfg.Table, cfg.PrimaryKey)
	}

	return b, nil
}

// MustNew is like New but panics on a misconfigured record type.
func MustNew[T any](db postgres.Querier, cfg Config, opts ...Option) *Base[T] {
	b, err := New[T](db, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Table returns the table name.
func (b *Base[T]) Table() string { return b.cfg.Table }

// Columns returns the mapped columns in struct order.
func (b *Base[T]) Columns() []string { return slices.Clone(b.columns) }

// SoftDeletable reports whether the record carries the soft-delete columns.
func (b *Base[T]) SoftDeletable() bool {
	_, ok := b.byColumn[colIsDeleted]
	return ok
}

// Q returns the querier for ctx: the active transaction or the pool.
func (b *Base[T]) Q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, b.db)
}

// Now returns the current time from the configured clock.
func (b *Base[T]) Now() time.Time { return b.now() }

// Get starts a query over the table with the given predicates ANDed together.
// It does not exclude soft-deleted rows; add NotDeleted() for that.
func (b *Base[T]) Get(preds ...sq.Sqlizer) Query[T] {
	sb := Builder().Select(b.columns...).From(b.cfg.Table)
	for _, p := range preds {
		sb = sb.Where(p)
	}
	return Query[T]{base: b, sb: sb}
}

// GetWhere starts a query from a filter mapping. Unknown columns surface as
// an error when the query runs.
func (b *Base[T]) GetWhere(fm domain.FilterMap) Query[T] {
	preds, err := b.Predicates(fm)
	q := b.Get(preds...)
	q.err = err
	return q
}

// Active starts a query that skips soft-deleted rows when the record
// supports soft delete.
func (b *Base[T]) Active(preds ...sq.Sqlizer) Query[T] {
	if b.SoftDeletable() {
		preds = append(preds, NotDeleted())
	}
	return b.Get(preds...)
}

// GetActive returns the row keyed by id, treating soft-deleted rows as absent.
func (b *Base[T]) GetActive(ctx context.Context, id any) (*T, error) {
	return b.Active(sq.Eq{b.cfg.PrimaryKey: id}).OneOrNotFound(ctx, id)
}

// LockActive is GetActive with a row lock held until the transaction ends.
func (b *Base[T]) LockActive(ctx context.Context, id any) (*T, error) {
	return b.Active(sq.Eq{b.cfg.PrimaryKey: id}).ForUpdate().OneOrNotFound(ctx, id)
}

// GetMulti returns one page of rows ordered by primary key, without filters.
// A nil limit returns every row after the first skip.
func (b *Base[T]) GetMulti(ctx context.Context, skip uint64, limit *uint64) ([]*T, error) {
	q := b.Get().OrderBy(b.cfg.PrimaryKey).Offset(skip)
	if limit != nil {
		q = q.Limit(*limit)
	}
	return q.All(ctx)
}

// All returns every row of the table, soft-deleted ones included.
func (b *Base[T]) All(ctx context.Context) ([]*T, error) {
	return b.Get().OrderBy(b.cfg.PrimaryKey).All(ctx)
}

// Save upserts the in-memory state of e and refreshes e from the stored row.
// A missing identifier is assigned and timestamps are stamped first.
func (b *Base[T]) Save(ctx context.Context, e *T) error {
	return b.write(ctx, e, true)
}

// Insert writes e as a new row and refreshes it from the stored row. Unlike
// Save it fails with domain.ErrAlreadyExists when the key or any unique
// constraint is already taken.
func (b *Base[T]) Insert(ctx context.Context, e *T) error {
	return b.write(ctx, e, false)
}

func (b *Base[T]) write(ctx context.Context, e *T, upsert bool) error {
	if a, ok := any(e).(idAssigner); ok {
		if err := a.AssignID(); err != nil {
			return fmt.Errorf("%s: assign id: %w", b.cfg.Entity, err)
		}
	}
	if t, ok := any(e).(toucher); ok {
		t.Touch(b.now())
	}

	v := reflect.ValueOf(e).Elem()
	values := make([]any, len(b.fields))
	sets := make([]string, 0, len(b.fields))
	for i, f := range b.fields {
		values[i] = v.FieldByIndex(f.index).Interface()
		if f.column == b.cfg.PrimaryKey || f.column == colCreatedAt {
			continue
		}
		sets = append(sets, f.column+" = EXCLUDED."+f.column)
	}
	if len(sets) == 0 {
		sets = append(sets, b.cfg.PrimaryKey+" = EXCLUDED."+b.cfg.PrimaryKey)
	}

	returning := "RETURNING " + strings.Join(b.columns, ", ")
	suffix := returning
	if upsert {
		suffix = fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s %s",
			b.cfg.PrimaryKey, strings.Join(sets, ", "), returning)
	}

	sql, args, err := Builder().
		Insert(b.cfg.Table).
		Columns(b.columns...).
		Values(values...).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build insert: %w", b.cfg.Entity, err)
	}

	if err := pgxscan.Get(ctx, b.Q(ctx), e, sql, args...); err != nil {
		return postgres.MapError(err, b.cfg.Entity, b.key(e))
	}
	return nil
}

// Update merges patch into e and saves it. Absent columns are untouched.
// The primary key cannot be patched. On error e is left unchanged.
func (b *Base[T]) Update(ctx context.Context, e *T, patch Patcher) error {
	p := patch.Patch()
	draft := *e
	dv := reflect.ValueOf(&draft).Elem()

	for col, val := range p {
		if col == b.cfg.PrimaryKey {
			return domain.NewValidationError(col, "identifier is immutable")
		}
		f, ok := b.byColumn[col]
		if !ok {
			return domain.NewValidationError(col, "unknown field")
		}
		if err := assign(dv.FieldByIndex(f.index), val); err != nil {
			return domain.NewValidationError(col, err.Error())
		}
	}

	if err := b.Save(ctx, &draft); err != nil {
		return err
	}
	*e = draft
	return nil
}

// Delete soft-deletes e by default, stamping deleted_at. With hard set, the
// row is removed permanently.
func (b *Base[T]) Delete(ctx context.Context, e *T, hard bool) error {
	if hard {
		sql, args, err := Builder().
			Delete(b.cfg.Table).
			Where(sq.Eq{b.cfg.PrimaryKey: b.key(e)}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: build delete: %w", b.cfg.Entity, err)
		}
		if _, err := b.Q(ctx).Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, b.cfg.Entity, b.key(e))
		}
		return nil
	}

	if !b.SoftDeletable() {
		return fmt.Errorf("%s: %w", b.cfg.Entity, ErrNotSoftDeletable)
	}
	return b.Update(ctx, e, Patch{colIsDeleted: true, colDeletedAt: b.now()})
}

// Restore clears the soft-delete state of e.
func (b *Base[T]) Restore(ctx context.Context, e *T) error {
	if !b.SoftDeletable() {
		return fmt.Errorf("%s: %w", b.cfg.Entity, ErrNotSoftDeletable)
	}
	return b.Update(ctx, e, Patch{colIsDeleted: false, colDeletedAt: nil})
}

// HardDeleteDeletedBefore permanently removes rows soft-deleted before t and
// returns how many were removed.
func (b *Base[T]) HardDeleteDeletedBefore(ctx context.Context, t time.Time) (int64, error) {
	if !b.SoftDeletable() {
		return 0, fmt.Errorf("%s: %w", b.cfg.Entity, ErrNotSoftDeletable)
	}
	sql, args, err := Builder().
		Delete(b.cfg.Table).
		Where(OnlyDeleted()).
		Where(sq.Lt{colDeletedAt: t}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build purge: %w", b.cfg.Entity, err)
	}
	tag, err := b.Q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: purge: %w", b.cfg.Entity, err)
	}
	return tag.RowsAffected(), nil
}

// Select scans every row produced by query into dst, a pointer to a slice.
func (b *Base[T]) Select(ctx context.Context, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", b.cfg.Entity, err)
	}
	if err := pgxscan.Select(ctx, b.Q(ctx), dst, sql, args...); err != nil {
		return fmt.Errorf("%s: %w", b.cfg.Entity, err)
	}
	return nil
}

// Scalar scans the single row produced by query into dst.
func (b *Base[T]) Scalar(ctx context.Context, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", b.cfg.Entity, err)
	}
	if err := pgxscan.Get(ctx, b.Q(ctx), dst, sql, args...); err != nil {
		return fmt.Errorf("%s: %w", b.cfg.Entity, err)
	}
	return nil
}

func (b *Base[T]) key(e *T) any {
	return reflect.ValueOf(e).Elem().FieldByIndex(b.byColumn[b.cfg.PrimaryKey].index).Interface()
}
