package modulequiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

// CreateModuleQuiz returns the user's active quiz for the module, creating it
// on first use.
func (s *Service) CreateModuleQuiz(ctx context.Context, input CreateInput) (*domain.ModuleQuiz, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.ModuleName)

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	existing, err := s.quizzes.FindByUserAndName(ctx, input.UserID, name)
	if err != nil {
		return nil, fmt.Errorf("find module quiz: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	q := &domain.ModuleQuiz{
		UserID:     input.UserID,
		ModuleName: name,
		Score:      input.Score,
	}
	if err := s.quizzes.Save(ctx, q); err != nil {
		return nil, fmt.Errorf("save module quiz: %w", err)
	}

	s.log.InfoContext(ctx, "module quiz created",
		slog.String("quiz_id", q.ID.String()),
		slog.String("user_id", q.UserID.String()),
		slog.String("module", q.ModuleName),
	)
	return q, nil
}

func (s *Service) GetModuleQuiz(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	q, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get module quiz: %w", err)
	}
	return q, nil
}

func (s *Service) ListUserModuleQuizzes(ctx context.Context, userID uuid.UUID) ([]*domain.ModuleQuiz, error) {
	quizzes, err := s.quizzes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list module quizzes: %w", err)
	}
	return quizzes, nil
}

func (s *Service) DeleteModuleQuiz(ctx context.Context, id uuid.UUID) error {
	q, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get module quiz: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), q.UserID) {
		return domain.ErrForbidden
	}
	if err := s.quizzes.Delete(ctx, q, false); err != nil {
		return fmt.Errorf("delete module quiz: %w", err)
	}
	return nil
}

// TotalProgress sums progress and completion counters over the user's
// active module quizzes.
func (s *Service) TotalProgress(ctx context.Context, userID uuid.UUID) (domain.ModuleProgressTotal, error) {
	total, err := s.quizzes.TotalProgress(ctx, userID)
	if err != nil {
		return domain.ModuleProgressTotal{}, fmt.Errorf("total progress: %w", err)
	}
	return total, nil
}
