package lessonquiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

// CreateLessonQuiz returns the user's quiz for the lesson, creating it on
// first use. An existing quiz keeps its stored score.
func (s *Service) CreateLessonQuiz(ctx context.Context, input CreateInput) (*domain.LessonQuiz, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.LessonName)

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	existing, err := s.quizzes.FindByUserAndName(ctx, input.UserID, name)
	if err != nil {
		return nil, fmt.Errorf("find lesson quiz: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	q := &domain.LessonQuiz{UserID: input.UserID, LessonName: name, Score: input.Score}
	if err := s.quizzes.Save(ctx, q); err != nil {
		return nil, fmt.Errorf("save lesson quiz: %w", err)
	}

	s.log.InfoContext(ctx, "lesson quiz created",
		slog.String("quiz_id", q.ID.String()),
		slog.String("lesson", q.LessonName),
	)
	return q, nil
}

func (s *Service) GetLessonQuiz(ctx context.Context, id uuid.UUID) (*domain.LessonQuiz, error) {
	q, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lesson quiz: %w", err)
	}
	return q, nil
}

func (s *Service) ListUserLessonQuizzes(ctx context.Context, userID uuid.UUID) ([]*domain.LessonQuiz, error) {
	quizzes, err := s.quizzes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lesson quizzes: %w", err)
	}
	return quizzes, nil
}

// UpdateScore records a submitted score under the same policy as module
// quizzes.
func (s *Service) UpdateScore(ctx context.Context, input ScoreInput) (*domain.LessonQuiz, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var q *domain.LessonQuiz
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		q, err = s.quizzes.LockByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("lock lesson quiz: %w", err)
		}
		score, changed := domain.ApplyScore(q.Score, input.Score)
		if !changed {
			return nil
		}
		if err := s.quizzes.Update(txCtx, q, domain.Patch{"l_quizscore": score}); err != nil {
			return fmt.Errorf("update score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) DeleteLessonQuiz(ctx context.Context, id uuid.UUID) error {
	q, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get lesson quiz: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), q.UserID) {
		return domain.ErrForbidden
	}
	if err := s.quizzes.Delete(ctx, q, false); err != nil {
		return fmt.Errorf("delete lesson quiz: %w", err)
	}
	return nil
}
