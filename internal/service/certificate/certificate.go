package certificate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

var errQuizNotCompleted = domain.WithDetail(domain.ErrNotFound, "Module quiz not completed or does not exist")

// CreateCertificate issues the certificate of a completed module quiz. A quiz
// that already has one gets it back unchanged.
func (s *Service) CreateCertificate(ctx context.Context, input CreateInput) (*domain.Certificate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	quiz, err := s.quizzes.GetByID(ctx, input.ModuleQuizID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errQuizNotCompleted
		}
		return nil, fmt.Errorf("get module quiz: %w", err)
	}
	if !quiz.Completed() {
		return nil, errQuizNotCompleted
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	existing, err := s.certs.FindByModuleQuiz(ctx, quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("find certificate: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	module := strings.TrimSpace(input.ModuleName)
	if module == "" {
		module = quiz.ModuleName
	}
	score := input.Score
	if score == 0 {
		score = quiz.Score
	}

	cert := &domain.Certificate{
		UserID:       user.ID,
		ModuleQuizID: quiz.ID,
		ModuleName:   module,
		Score:        score,
	}
	if err := cert.AssignID(); err != nil {
		return nil, fmt.Errorf("assign certificate id: %w", err)
	}

	name, err := s.renderer.Render(ctx, domain.CertificateContent{
		CertificateID: cert.ID,
		UserID:        user.ID,
		FullName:      user.FullName(),
		ModuleName:    module,
		Score:         score,
		IssuedAt:      s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	cert.CertificateURL = &name

	if err := s.certs.Save(ctx, cert); err != nil {
		if rmErr := s.renderer.Remove(name); rmErr != nil {
			s.log.WarnContext(ctx, "remove unsaved certificate file",
				slog.String("file", name),
				slog.String("error", rmErr.Error()),
			)
		}
		return nil, fmt.Errorf("save certificate: %w", err)
	}

	s.log.InfoContext(ctx, "certificate issued",
		slog.String("certificate_id", cert.ID.String()),
		slog.String("quiz_id", quiz.ID.String()),
		slog.String("user_id", user.ID.String()),
	)
	return cert, nil
}

// IssueForQuiz issues the certificate of a completed quiz on behalf of the
// quiz owner.
func (s *Service) IssueForQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Certificate, error) {
	quiz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("get module quiz: %w", err)
	}
	return s.CreateCertificate(ctx, CreateInput{
		ModuleQuizID: quiz.ID,
		UserID:       quiz.UserID,
		ModuleName:   quiz.ModuleName,
		Score:        quiz.Score,
	})
}

func (s *Service) GetCertificate(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	c, err := s.certs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return c, nil
}

func (s *Service) ListUserCertificates(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
	certs, err := s.certs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return certs, nil
}

// CertificateFile returns the local path of a certificate image.
func (s *Service) CertificateFile(ctx context.Context, id uuid.UUID) (string, error) {
	c, err := s.certs.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get certificate: %w", err)
	}
	if c.CertificateURL == nil {
		return "", domain.WithDetail(domain.ErrNotFound, "Certificate file not available")
	}
	p, err := s.renderer.Path(*c.CertificateURL)
	if err != nil {
		return "", fmt.Errorf("certificate file: %w", err)
	}
	return p, nil
}
