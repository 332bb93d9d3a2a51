package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/lesson"
	"github.com/heartmarshall/fairplay-backend/internal/service/lessonquiz"
)

type lessonService interface {
	CreateLesson(ctx context.Context, input lesson.CreateInput) (*domain.Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	ListUserLessons(ctx context.Context, userID uuid.UUID) ([]*domain.Lesson, error)
	DeleteLesson(ctx context.Context, id uuid.UUID) error
	IncrementCompleted(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	SetQuizScore(ctx context.Context, input lesson.QuizScoreInput) (*domain.Lesson, error)
	QuizScore(ctx context.Context, id, moduleID, userID uuid.UUID) (int, error)
}

type lessonQuizService interface {
	CreateLessonQuiz(ctx context.Context, input lessonquiz.CreateInput) (*domain.LessonQuiz, error)
	GetLessonQuiz(ctx context.Context, id uuid.UUID) (*domain.LessonQuiz, error)
	ListUserLessonQuizzes(ctx context.Context, userID uuid.UUID) ([]*domain.LessonQuiz, error)
	UpdateScore(ctx context.Context, input lessonquiz.ScoreInput) (*domain.LessonQuiz, error)
	DeleteLessonQuiz(ctx context.Context, id uuid.UUID) error
}

// LessonHandler serves /lessons and /lesson-quizzes.
type LessonHandler struct {
	lessons lessonService
	quizzes lessonQuizService
	log     *slog.Logger
}

// NewLessonHandler creates a LessonHandler.
func NewLessonHandler(lessons lessonService, quizzes lessonQuizService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{lessons: lessons, quizzes: quizzes, log: logger.With("handler", "lesson")}
}

type quizScoreResponse struct {
	Score int `json:"score"`
}

// Create handles POST /lessons.
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input lesson.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	l, err := h.lessons.CreateLesson(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// Get handles GET /lessons/{id}.
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := withPathID(r, h.lessons.GetLesson)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// ListByUser handles GET /lessons/user/{user_id}.
func (h *LessonHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	lessons, err := h.lessons.ListUserLessons(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, lessons)
}

// Delete handles DELETE /lessons/{id}.
func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.log, h.lessons.DeleteLesson)
}

// IncrementCompleted handles PATCH /lessons/{id}/completed.
func (h *LessonHandler) IncrementCompleted(w http.ResponseWriter, r *http.Request) {
	l, err := withPathID(r, h.lessons.IncrementCompleted)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// SetQuizScore handles PATCH /lessons/{id}/quiz-score with
// {"user_id", "module_id", "score"}.
func (h *LessonHandler) SetQuizScore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var input lesson.QuizScoreInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	input.ID = id

	l, err := h.lessons.SetQuizScore(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// QuizScore handles GET /lessons/quiz-score/{id}?user_id&module_id.
func (h *LessonHandler) QuizScore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	userID, err := queryID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	moduleID, err := queryID(r, "module_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	score, err := h.lessons.QuizScore(r.Context(), id, moduleID, userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, quizScoreResponse{Score: score})
}

// CreateQuiz handles POST /lesson-quizzes. An existing quiz for the same
// user and lesson is returned instead of a new one.
func (h *LessonHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var input lessonquiz.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	q, err := h.quizzes.CreateLessonQuiz(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

// GetQuiz handles GET /lesson-quizzes/{id}.
func (h *LessonHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	q, err := withPathID(r, h.quizzes.GetLessonQuiz)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// ListQuizzesByUser handles GET /lesson-quizzes/user/{user_id}.
func (h *LessonHandler) ListQuizzesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	quizzes, err := h.quizzes.ListUserLessonQuizzes(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, quizzes)
}

// UpdateQuizScore handles PATCH /lesson-quizzes/{id}/score.
func (h *LessonHandler) UpdateQuizScore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req scoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	score, err := req.value()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	q, err := h.quizzes.UpdateScore(r.Context(), lessonquiz.ScoreInput{ID: id, Score: score})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// DeleteQuiz handles DELETE /lesson-quizzes/{id}.
func (h *LessonHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, h.log, h.quizzes.DeleteLessonQuiz)
}
