package certificate

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type mockCertRepo struct {
	byQuiz  map[uuid.UUID]*domain.Certificate
	saves   int
	saveErr error
}

func (m *mockCertRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	for _, c := range m.byQuiz {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCertRepo) FindByModuleQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Certificate, error) {
	return m.byQuiz[quizID], nil
}

func (m *mockCertRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
	out := []*domain.Certificate{}
	for _, c := range m.byQuiz {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCertRepo) Save(ctx context.Context, c *domain.Certificate) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.byQuiz[c.ModuleQuizID] = c
	return nil
}

type mockQuizRepo struct {
	quizzes map[uuid.UUID]*domain.ModuleQuiz
}

func (m *mockQuizRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModuleQuiz, error) {
	if q, ok := m.quizzes[id]; ok {
		return q, nil
	}
	return nil, domain.ErrNotFound
}

type mockUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

type mockRenderer struct {
	rendered []domain.CertificateContent
	removed  []string
	err      error
}

func (m *mockRenderer) Render(ctx context.Context, c domain.CertificateContent) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.rendered = append(m.rendered, c)
	return c.UserID.String() + ".png", nil
}

func (m *mockRenderer) Path(name string) (string, error) {
	return "/certs/" + name, nil
}

func (m *mockRenderer) Remove(name string) error {
	m.removed = append(m.removed, name)
	return nil
}

type fixture struct {
	svc      *Service
	certs    *mockCertRepo
	renderer *mockRenderer
	quiz     *domain.ModuleQuiz
	user     *domain.User
}

func newFixture(t *testing.T, completed bool) *fixture {
	t.Helper()

	user := &domain.User{FirstName: "Ada", LastName: "Lovelace"}
	user.ID = uuid.New()
	quiz := &domain.ModuleQuiz{UserID: user.ID, ModuleName: "Saving 101", Score: 88}
	quiz.ID = uuid.New()
	if completed {
		quiz.ModuleCompleted = 1
	}

	f := &fixture{
		certs:    &mockCertRepo{byQuiz: map[uuid.UUID]*domain.Certificate{}},
		renderer: &mockRenderer{},
		quiz:     quiz,
		user:     user,
	}
	f.svc = NewService(slog.Default(), f.certs,
		&mockQuizRepo{quizzes: map[uuid.UUID]*domain.ModuleQuiz{quiz.ID: quiz}},
		&mockUserRepo{users: map[uuid.UUID]*domain.User{user.ID: user}},
		f.renderer,
	)
	f.svc.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func TestIssueForQuiz_Idempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)

	first, err := f.svc.IssueForQuiz(context.Background(), f.quiz.ID)
	require.NoError(t, err)
	second, err := f.svc.IssueForQuiz(context.Background(), f.quiz.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, f.certs.saves)
	require.Len(t, f.renderer.rendered, 1)
	assert.Equal(t, "Ada Lovelace", f.renderer.rendered[0].FullName)
	assert.Equal(t, 88, first.Score)
	require.NotNil(t, first.CertificateURL)
}

func TestCreateCertificate_QuizNotCompleted(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	_, err := f.svc.CreateCertificate(context.Background(), CreateInput{ModuleQuizID: f.quiz.ID, UserID: f.user.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Module quiz not completed or does not exist")
}

func TestCreateCertificate_UnknownUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	_, err := f.svc.CreateCertificate(context.Background(), CreateInput{ModuleQuizID: f.quiz.ID, UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.certs.saves)
}

func TestCreateCertificate_OverridesNameAndScore(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	c, err := f.svc.CreateCertificate(context.Background(), CreateInput{
		ModuleQuizID: f.quiz.ID, UserID: f.user.ID, ModuleName: "Advanced Saving", Score: 95,
	})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Saving", c.ModuleName)
	assert.Equal(t, 95, c.Score)
}

func TestCreateCertificate_RenderFailureSavesNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.renderer.err = errors.New("disk full")

	_, err := f.svc.IssueForQuiz(context.Background(), f.quiz.ID)
	assert.ErrorIs(t, err, f.renderer.err)
	assert.Zero(t, f.certs.saves)
}

func TestCreateCertificate_SaveFailureRemovesFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.certs.saveErr = errors.New("connection reset")

	_, err := f.svc.IssueForQuiz(context.Background(), f.quiz.ID)
	assert.ErrorIs(t, err, f.certs.saveErr)
	require.Len(t, f.renderer.rendered, 1)
	assert.Equal(t, []string{f.user.ID.String() + ".png"}, f.renderer.removed)
	assert.Empty(t, f.certs.byQuiz)
}

func TestCertificateFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	c, err := f.svc.IssueForQuiz(context.Background(), f.quiz.ID)
	require.NoError(t, err)

	p, err := f.svc.CertificateFile(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "/certs/"+*c.CertificateURL, p)
}
