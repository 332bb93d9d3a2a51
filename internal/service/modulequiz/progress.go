package modulequiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// IncrementProgress moves a quiz to in progress. Later calls leave it as is.
func (s *Service) IncrementProgress(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	var q *domain.ModuleQuiz
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		q, err = s.quizzes.LockByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock module quiz: %w", err)
		}
		if q.ModuleProgress >= 1 {
			return nil
		}
		if err := s.quizzes.Update(txCtx, q, domain.Patch{"module_progress": q.ModuleProgress + 1}); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

// IncrementCompleted marks a quiz completed and issues its certificate.
//
// Completion happens once: a completed quiz is returned unchanged without
// touching certificates. The certificate is issued in its own savepoint
// after the completion is written. If issuing fails the completion stays
// and the caller gets a *domain.PartialError.
func (s *Service) IncrementCompleted(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	var (
		q       *domain.ModuleQuiz
		already bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		q, err = s.quizzes.LockByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock module quiz: %w", err)
		}
		if q.Completed() {
			already = true
			return nil
		}
		patch := domain.Patch{
			"module_completed": q.ModuleCompleted + 1,
			"completed_at":     s.now(),
		}
		if err := s.quizzes.Update(txCtx, q, patch); err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if already {
		return q, nil
	}

	s.log.InfoContext(ctx, "module completed",
		slog.String("quiz_id", q.ID.String()),
		slog.String("user_id", q.UserID.String()),
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.certs.IssueForQuiz(txCtx, q.ID)
		return err
	})
	if err != nil {
		s.log.ErrorContext(ctx, "certificate issuance failed",
			slog.String("quiz_id", q.ID.String()),
			slog.String("error", err.Error()),
		)
		return q, &domain.PartialError{Op: "issue certificate", Err: err}
	}

	return q, nil
}

// UpdateScore records a submitted score. A stored non-zero score is only
// replaced by a higher one.
func (s *Service) UpdateScore(ctx context.Context, input ScoreInput) (*domain.ModuleQuiz, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var q *domain.ModuleQuiz
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		q, err = s.quizzes.LockByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("lock module quiz: %w", err)
		}
		score, changed := domain.ApplyScore(q.Score, input.Score)
		if !changed {
			return nil
		}
		if err := s.quizzes.Update(txCtx, q, domain.Patch{"m_quizscore": score}); err != nil {
			return fmt.Errorf("update score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}
