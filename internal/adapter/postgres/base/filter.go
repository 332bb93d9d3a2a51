package base

import (
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type predicateBuilder func(column string, value any) sq.Sqlizer

var predicateBuilders = map[domain.Operator]predicateBuilder{
	domain.OpEq:    func(c string, v any) sq.Sqlizer { return sq.Eq{c: v} },
	domain.OpNotEq: func(c string, v any) sq.Sqlizer { return sq.NotEq{c: v} },
	domain.OpNot:   func(c string, _ any) sq.Sqlizer { return sq.Expr("NOT " + c) },
	domain.OpGt:    func(c string, v any) sq.Sqlizer { return sq.Gt{c: v} },
	domain.OpLt:    func(c string, v any) sq.Sqlizer { return sq.Lt{c: v} },
	domain.OpGte:   func(c string, v any) sq.Sqlizer { return sq.GtOrEq{c: v} },
	domain.OpLte:   func(c string, v any) sq.Sqlizer { return sq.LtOrEq{c: v} },
	domain.OpIn:    func(c string, v any) sq.Sqlizer { return sq.Eq{c: v} },
	domain.OpNotIn: func(c string, v any) sq.Sqlizer { return sq.NotEq{c: v} },
	domain.OpLike:  func(c string, v any) sq.Sqlizer { return sq.Like{c: v} },
}

// Predicate builds the SQL predicate for a single condition on column.
// Conditions are validated when constructed, so an operator outside the
// known set here is a programming error and panics.
func Predicate(column string, c domain.Condition) sq.Sqlizer {
	build, ok := predicateBuilders[c.Operator]
	if !ok {
		panic(fmt.Sprintf("base: invalid filter operator %q", c.Operator))
	}
	return build(column, c.Value)
}

// Predicates translates a filter mapping into predicates ordered by column
// name. Columns the record does not have are rejected.
func (b *Base[T]) Predicates(fm domain.FilterMap) ([]sq.Sqlizer, error) {
	columns := make([]string, 0, len(fm))
	for col := range fm {
		if _, ok := b.byColumn[col]; !ok {
			return nil, domain.NewValidationError(col, "unknown filter field")
		}
		columns = append(columns, col)
	}
	slices.Sort(columns)

	preds := make([]sq.Sqlizer, 0, len(columns))
	for _, col := range columns {
		preds = append(preds, Predicate(col, fm[col]))
	}
	return preds, nil
}

// NotDeleted excludes soft-deleted rows.
func NotDeleted() sq.Sqlizer { return sq.Eq{"is_deleted": false} }

// OnlyDeleted keeps only soft-deleted rows.
func OnlyDeleted() sq.Sqlizer { return sq.Eq{"is_deleted": true} }

// ByID matches the id column.
func ByID(id any) sq.Sqlizer { return sq.Eq{"id": id} }
