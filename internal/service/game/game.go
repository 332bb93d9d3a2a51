package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// RecordScore stores a game result together with the user's running total.
// The user row is locked so concurrent results see each other's totals.
func (s *Service) RecordScore(ctx context.Context, input RecordInput) (*domain.GameScore, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g := &domain.GameScore{
		UserID:   input.UserID,
		GameName: strings.TrimSpace(input.GameName),
		Score:    input.Score,
	}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.LockByID(txCtx, input.UserID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		total, err := s.scores.CumulativeTotal(txCtx, input.UserID)
		if err != nil {
			return fmt.Errorf("cumulative total: %w", err)
		}
		g.CumulativeTotal = total + input.Score
		if err := s.scores.Save(txCtx, g); err != nil {
			return fmt.Errorf("save game score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "game score recorded",
		slog.String("user_id", g.UserID.String()),
		slog.String("game", g.GameName),
		slog.Int("score", g.Score),
		slog.Int("cumulative_total", g.CumulativeTotal),
	)
	return g, nil
}

func (s *Service) ListUserScores(ctx context.Context, userID uuid.UUID) ([]*domain.GameScore, error) {
	scores, err := s.scores.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user scores: %w", err)
	}
	return scores, nil
}

func (s *Service) ListGameScores(ctx context.Context, name string) ([]*domain.GameScore, error) {
	scores, err := s.scores.ListByGame(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("list game scores: %w", err)
	}
	return scores, nil
}

// Leaderboard ranks users by the sum of their scores, highest first.
func (s *Service) Leaderboard(ctx context.Context, input LeaderboardInput) ([]domain.LeaderboardEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	entries, err := s.scores.Leaderboard(ctx, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return entries, nil
}

func (s *Service) UserTotal(ctx context.Context, userID uuid.UUID) (domain.GameTotal, error) {
	total, err := s.scores.UserTotal(ctx, userID)
	if err != nil {
		return domain.GameTotal{}, fmt.Errorf("user total: %w", err)
	}
	return total, nil
}
