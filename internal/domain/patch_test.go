package domain

import (
	"reflect"
	"testing"
)

func TestPatch_SetIf(t *testing.T) {
	t.Parallel()

	name := "cog"
	p := Patch{}
	SetIf(p, "name", &name)
	SetIf[int](p, "size", nil)
	p.Set("note", nil)

	want := Patch{"name": "cog", "note": nil}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("patch = %v, want %v", p, want)
	}
	if got := p.Patch(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Patch() = %v, want %v", got, want)
	}
}
