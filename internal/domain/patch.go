package domain

// Patch is a partial update keyed by column name. Columns absent from the
// map are left untouched; a present key with a nil value clears the column.
type Patch map[string]any

// Patcher is anything that can describe itself as a Patch, such as an update
// input with optional fields.
type Patcher interface {
	Patch() Patch
}

// Patch returns p itself so a Patch can be passed wherever a Patcher is expected.
func (p Patch) Patch() Patch { return p }

// Set records a value for column and returns p for chaining.
func (p Patch) Set(column string, value any) Patch {
	p[column] = value
	return p
}

// SetIf records *v for column when v is non-nil.
func SetIf[V any](p Patch, column string, v *V) Patch {
	if v != nil {
		p[column] = *v
	}
	return p
}
