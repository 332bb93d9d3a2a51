package alert

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

func (s *Service) CreateAlert(ctx context.Context, input CreateInput) (*domain.Alert, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), input.UserID) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	a := &domain.Alert{
		UserID:        input.UserID,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		AlertDatetime: input.AlertDatetime.UTC(),
	}
	if err := s.alerts.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save alert: %w", err)
	}

	s.log.InfoContext(ctx, "alert scheduled",
		slog.String("alert_id", a.ID.String()),
		slog.Time("alert_datetime", a.AlertDatetime),
	)
	return a, nil
}

func (s *Service) GetAlert(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	a, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

func (s *Service) ListUserAlerts(ctx context.Context, userID uuid.UUID) ([]*domain.Alert, error) {
	alerts, err := s.alerts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

// Upcoming returns the alerts due at input.At (default now), earliest first.
func (s *Service) Upcoming(ctx context.Context, input UpcomingInput) ([]*domain.Alert, error) {
	at := s.now()
	if input.At != nil {
		at = *input.At
	}
	alerts, err := s.alerts.Due(ctx, input.UserID, at.UTC())
	if err != nil {
		return nil, fmt.Errorf("due alerts: %w", err)
	}
	return alerts, nil
}

func (s *Service) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	a, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get alert: %w", err)
	}
	if !domain.OwnedBy(ctxutil.ActorFromCtx(ctx), a.UserID) {
		return domain.ErrForbidden
	}
	if err := s.alerts.Delete(ctx, a, false); err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	return nil
}
