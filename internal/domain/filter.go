package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Operator is a comparison used in a filter condition.
type Operator string

const (
	OpEq    Operator = "=="
	OpNotEq Operator = "!="
	OpNot   Operator = "not"
	OpGt    Operator = ">"
	OpLt    Operator = "<"
	OpGte   Operator = ">="
	OpLte   Operator = "<="
	OpIn    Operator = "in"
	OpNotIn Operator = "not in"
	OpLike  Operator = "like"
)

var operators = map[Operator]struct{}{
	OpEq: {}, OpNotEq: {}, OpNot: {},
	OpGt: {}, OpLt: {}, OpGte: {}, OpLte: {},
	OpIn: {}, OpNotIn: {}, OpLike: {},
}

// IsValid reports whether o is one of the known operators.
func (o Operator) IsValid() bool {
	_, ok := operators[o]
	return ok
}

// ParseOperator converts s into an Operator, rejecting unknown values.
func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if !op.IsValid() {
		return "", NewValidationError("operator", fmt.Sprintf("unknown operator %q", s))
	}
	return op, nil
}

// Condition is a single {operator, value} pair applied to one field.
type Condition struct {
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

// NewCondition builds a condition, validating the operator and the shape of value.
func NewCondition(op string, value any) (Condition, error) {
	o, err := ParseOperator(op)
	if err != nil {
		return Condition{}, err
	}
	c := Condition{Operator: o, Value: value}
	if err := c.check(); err != nil {
		return Condition{}, err
	}
	return c, nil
}

// UnmarshalJSON decodes a condition and rejects unknown operators.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var raw struct {
		Operator string `json:"operator"`
		Value    any    `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewCondition(raw.Operator, raw.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Condition) check() error {
	switch c.Operator {
	case OpIn, OpNotIn:
		if c.Value == nil {
			return NewValidationError("value", string(c.Operator)+" requires a list")
		}
		if k := reflect.TypeOf(c.Value).Kind(); k != reflect.Slice && k != reflect.Array {
			return NewValidationError("value", string(c.Operator)+" requires a list")
		}
	case OpLike:
		if _, ok := c.Value.(string); !ok {
			return NewValidationError("value", "like requires a string pattern")
		}
	}
	return nil
}

// FilterMap maps a column name to the condition applied to it.
type FilterMap map[string]Condition

func Eq(v any) Condition      { return Condition{Operator: OpEq, Value: v} }
func NotEq(v any) Condition   { return Condition{Operator: OpNotEq, Value: v} }
func Not() Condition          { return Condition{Operator: OpNot} }
func Gt(v any) Condition      { return Condition{Operator: OpGt, Value: v} }
func Lt(v any) Condition      { return Condition{Operator: OpLt, Value: v} }
func Gte(v any) Condition     { return Condition{Operator: OpGte, Value: v} }
func Lte(v any) Condition     { return Condition{Operator: OpLte, Value: v} }
func In(v any) Condition      { return Condition{Operator: OpIn, Value: v} }
func NotIn(v any) Condition   { return Condition{Operator: OpNotIn, Value: v} }
func Like(p string) Condition { return Condition{Operator: OpLike, Value: p} }
