package domain

import "testing"

func TestApplyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		stored      int
		submitted   int
		want        int
		wantChanged bool
	}{
		{name: "zero stored takes submitted", stored: 0, submitted: 70, want: 70, wantChanged: true},
		{name: "lower submission ignored", stored: 70, submitted: 60, want: 70},
		{name: "higher submission wins", stored: 70, submitted: 85, want: 85, wantChanged: true},
		{name: "equal submission ignored", stored: 70, submitted: 70, want: 70},
		{name: "zero stored and zero submitted", stored: 0, submitted: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := ApplyScore(tt.stored, tt.submitted)
			if got != tt.want {
				t.Errorf("ApplyScore(%d, %d) = %d, want %d", tt.stored, tt.submitted, got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("ApplyScore(%d, %d) changed = %v, want %v", tt.stored, tt.submitted, changed, tt.wantChanged)
			}
		})
	}
}

func TestApplyScore_Sequence(t *testing.T) {
	t.Parallel()

	stored := 0
	for _, submitted := range []int{70, 60, 85, 10} {
		stored, _ = ApplyScore(stored, submitted)
	}
	if stored != 85 {
		t.Fatalf("stored = %d, want 85", stored)
	}
}

func TestModuleQuiz_State(t *testing.T) {
	t.Parallel()

	q := ModuleQuiz{}
	if got := q.State(); got != QuizNotStarted {
		t.Fatalf("State() = %q, want %q", got, QuizNotStarted)
	}

	q.ModuleProgress = 1
	if got := q.State(); got != QuizInProgress {
		t.Fatalf("State() = %q, want %q", got, QuizInProgress)
	}

	q.ModuleCompleted = 1
	if got := q.State(); got != QuizCompleted {
		t.Fatalf("State() = %q, want %q", got, QuizCompleted)
	}
	if !q.Completed() {
		t.Fatal("Completed() = false")
	}
}

func TestLesson_State(t *testing.T) {
	t.Parallel()

	l := Lesson{}
	if got := l.State(); got != QuizNotStarted {
		t.Fatalf("State() = %q, want %q", got, QuizNotStarted)
	}
	l.QuizScore = 40
	if got := l.State(); got != QuizInProgress {
		t.Fatalf("State() = %q, want %q", got, QuizInProgress)
	}
	l.LessonsCompleted = 1
	if got := l.State(); got != QuizCompleted {
		t.Fatalf("State() = %q, want %q", got, QuizCompleted)
	}
}
