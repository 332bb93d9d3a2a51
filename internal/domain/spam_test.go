package domain

import (
	"errors"
	"testing"
)

func TestIsPromotional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content string
		want    bool
	}{
		{"Who wants to study for the quiz tonight?", false},
		{"BUY NOW and get a discount", true},
		{"Huge Flash Sale today", true},
		{"As seen on TV!", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPromotional(tt.content); got != tt.want {
			t.Errorf("IsPromotional(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestCheckPromotional(t *testing.T) {
	t.Parallel()

	err := CheckPromotional("click here for a free gift")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}
	if err.Error() != "Message content detected as promotional and rejected." {
		t.Fatalf("unexpected detail %q", err.Error())
	}
	if err := CheckPromotional("see you at practice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
