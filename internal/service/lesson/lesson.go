package lesson

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

var errNotOwned = domain.WithDetail(domain.ErrNotFound, "Lesson does not belong to this user")

func (s *Service) CreateLesson(ctx context.Context, input CreateInput) (*domain.Lesson, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if _, err := s.quizzes.GetByID(ctx, input.ModuleID); err != nil {
		return nil, fmt.Errorf("get module: %w", err)
	}

	l := &domain.Lesson{
		UserID:   input.UserID,
		ModuleID: input.ModuleID,
		Name:     strings.TrimSpace(input.Name),
		MediaURL: input.MediaURL,
	}
	if err := s.lessons.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("save lesson: %w", err)
	}

	s.log.InfoContext(ctx, "lesson created",
		slog.String("lesson_id", l.ID.String()),
		slog.String("module_id", l.ModuleID.String()),
	)
	return l, nil
}

func (s *Service) GetLesson(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	l, err := s.lessons.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return l, nil
}

func (s *Service) ListUserLessons(ctx context.Context, userID uuid.UUID) ([]*domain.Lesson, error) {
	lessons, err := s.lessons.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

func (s *Service) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	l, err := s.lessons.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get lesson: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), l.UserID) {
		return domain.ErrForbidden
	}
	if err := s.lessons.Delete(ctx, l, false); err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}
	return nil
}

// IncrementCompleted marks the lesson completed. A completed lesson is
// returned as is.
func (s *Service) IncrementCompleted(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	var l *domain.Lesson
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		l, err = s.lessons.LockByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock lesson: %w", err)
		}
		if l.LessonsCompleted >= 1 {
			return nil
		}
		if err := s.lessons.Update(txCtx, l, domain.Patch{"lessons_completed": l.LessonsCompleted + 1}); err != nil {
			return fmt.Errorf("update completed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// SetQuizScore records a lesson quiz score. The lesson must belong to the
// given user and module; a stored non-zero score only grows.
func (s *Service) SetQuizScore(ctx context.Context, input QuizScoreInput) (*domain.Lesson, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var l *domain.Lesson
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		l, err = s.lessons.LockByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("lock lesson: %w", err)
		}
		if l.UserID != input.UserID || l.ModuleID != input.ModuleID {
			return errNotOwned
		}
		score, changed := domain.ApplyScore(l.QuizScore, input.Score)
		if !changed {
			return nil
		}
		if err := s.lessons.Update(txCtx, l, domain.Patch{"lesson_quiz": score}); err != nil {
			return fmt.Errorf("update quiz score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// QuizScore returns the stored quiz score of a lesson owned by userID inside
// moduleID.
func (s *Service) QuizScore(ctx context.Context, id, moduleID, userID uuid.UUID) (int, error) {
	l, err := s.lessons.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get lesson: %w", err)
	}
	if l.UserID != userID || l.ModuleID != moduleID {
		return 0, errNotOwned
	}
	return l.QuizScore, nil
}
