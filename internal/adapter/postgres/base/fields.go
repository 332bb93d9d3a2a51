package base

import (
	"fmt"
	"reflect"
	"strings"
)

// field maps a column to the struct field that stores it.
type field struct {
	column string
	index  []int
}

// mapFields walks the db tags of t, descending into embedded structs that
// carry no tag of their own (the capability structs of the domain package).
func mapFields(t reflect.Type) ([]field, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("base: %s is not a struct", t)
	}

	var fields []field
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := range t.NumField() {
			sf := t.Field(i)
			index := append(append([]int(nil), prefix...), i)
			tag, hasTag := sf.Tag.Lookup("db")

			if sf.Anonymous && !hasTag && sf.Type.Kind() == reflect.Struct {
				walk(sf.Type, index)
				continue
			}
			if !sf.IsExported() || tag == "-" {
				continue
			}

			name, _, _ := strings.Cut(tag, ",")
			if name == "" {
				name = strings.ToLower(sf.Name)
			}
			fields = append(fields, field{column: name, index: index})
		}
	}
	walk(t, nil)

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.column]; dup {
			return nil, fmt.Errorf("base: %s maps column %q twice", t, f.column)
		}
		seen[f.column] = struct{}{}
	}

	return fields, nil
}

// assign stores val into dst, converting between pointer and value forms and
// between numeric kinds. A nil val resets dst to its zero value.
func assign(dst reflect.Value, val any) error {
	if val == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	src := reflect.ValueOf(val)
	if src.Kind() == reflect.Pointer && src.Type() != dst.Type() {
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		src = src.Elem()
	}

	target := dst.Type()
	wrap := false
	if target.Kind() == reflect.Pointer && src.Type() != target {
		target = target.Elem()
		wrap = true
	}

	var out reflect.Value
	switch {
	case src.Type().AssignableTo(target):
		out = src
	case sameFamily(src.Kind(), target.Kind()) && src.Type().ConvertibleTo(target):
		out = src.Convert(target)
	default:
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}

	if wrap {
		p := reflect.New(target)
		p.Elem().Set(out)
		out = p
	}
	dst.Set(out)
	return nil
}

func sameFamily(a, b reflect.Kind) bool {
	switch {
	case isNumber(a) && isNumber(b):
		return true
	case a == reflect.String && b == reflect.String:
		return true
	case a == reflect.Bool && b == reflect.Bool:
		return true
	}
	return false
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
