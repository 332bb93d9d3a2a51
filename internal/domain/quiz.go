package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuizState is the lifecycle position of a module or lesson quiz.
// Transitions only move forward.
type QuizState string

const (
	QuizNotStarted QuizState = "not_started"
	QuizInProgress QuizState = "in_progress"
	QuizCompleted  QuizState = "completed"
)

// ApplyScore returns the score to store when submitted arrives while stored is
// on record, and whether it differs from stored. A non-zero stored score is
// only replaced by a strictly greater one.
func ApplyScore(stored, submitted int) (int, bool) {
	if stored == 0 || submitted > stored {
		return submitted, submitted != stored
	}
	return stored, false
}

// ModuleQuiz tracks a user's progress through one learning module.
type ModuleQuiz struct {
	Base
	UserID          uuid.UUID  `db:"user_id"          json:"user_id"`
	ModuleName      string     `db:"module_name"      json:"module_name"`
	ModuleProgress  int        `db:"module_progress"  json:"module_progress"`
	ModuleCompleted int        `db:"module_completed" json:"module_completed"`
	Score           int        `db:"m_quizscore"      json:"m_quizscore"`
	CompletedAt     *time.Time `db:"completed_at"     json:"completed_at"`
}

// State derives the lifecycle state from progress counters.
func (q *ModuleQuiz) State() QuizState {
	switch {
	case q.ModuleCompleted >= 1:
		return QuizCompleted
	case q.ModuleProgress >= 1:
		return QuizInProgress
	default:
		return QuizNotStarted
	}
}

// Completed reports whether the module has been marked complete.
func (q *ModuleQuiz) Completed() bool { return q.ModuleCompleted >= 1 }

// ModuleProgressTotal aggregates progress counters over a user's module quizzes.
type ModuleProgressTotal struct {
	TotalProgress  int `db:"total_progress"  json:"total_progress"`
	TotalCompleted int `db:"total_completed" json:"total_completed"`
}

// Lesson is a unit of content inside a module.
type Lesson struct {
	Base
	UserID           uuid.UUID `db:"user_id"           json:"user_id"`
	ModuleID         uuid.UUID `db:"module_id"         json:"module_id"`
	Name             string    `db:"name"              json:"name"`
	MediaURL         *string   `db:"media_url"         json:"media_url"`
	QuizScore        int       `db:"lesson_quiz"       json:"lesson_quiz"`
	LessonsCompleted int       `db:"lessons_completed" json:"lessons_completed"`
}

// State derives the lifecycle state of the lesson.
func (l *Lesson) State() QuizState {
	switch {
	case l.LessonsCompleted >= 1:
		return QuizCompleted
	case l.QuizScore > 0:
		return QuizInProgress
	default:
		return QuizNotStarted
	}
}

// LessonQuiz records a user's best score on a lesson quiz.
type LessonQuiz struct {
	Base
	UserID     uuid.UUID `db:"user_id"     json:"user_id"`
	LessonName string    `db:"lesson_name" json:"lesson_name"`
	Score      int       `db:"l_quizscore" json:"l_quizscore"`
}
