package comment

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

type mockCommentRepo struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	LockByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPostFunc func(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	SaveFunc       func(ctx context.Context, c *domain.Comment) error
	UpdateFunc     func(ctx context.Context, c *domain.Comment, patch domain.Patcher) error
	DeleteFunc     func(ctx context.Context, c *domain.Comment, hard bool) error
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCommentRepo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.LockByIDFunc != nil {
		return m.LockByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	if m.ListByPostFunc != nil {
		return m.ListByPostFunc(ctx, postID)
	}
	return []*domain.Comment{}, nil
}

func (m *mockCommentRepo) Save(ctx context.Context, c *domain.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.AssignID()
}

func (m *mockCommentRepo) Update(ctx context.Context, c *domain.Comment, patch domain.Patcher) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c, patch)
	}
	if v, ok := patch.Patch()["like_count"].(int); ok {
		c.LikeCount = v
	}
	return nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, c *domain.Comment, hard bool) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, c, hard)
	}
	return nil
}

type mockPostRepo struct {
	err error
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	p := &domain.Post{}
	p.ID = id
	return p, nil
}

type mockUserRepo struct {
	err error
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u := &domain.User{}
	u.ID = id
	return u, nil
}

type mockTxManager struct{}

func (mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestCreateComment_Success(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &mockCommentRepo{}, &mockPostRepo{}, &mockUserRepo{}, mockTxManager{})
	c, err := svc.CreateComment(context.Background(), CreateInput{
		PostID: uuid.New(), UserID: uuid.New(), Comment: " nice ",
	})
	require.NoError(t, err)
	assert.Equal(t, "nice", c.Comment)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestCreateComment_MissingPost(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &mockCommentRepo{}, &mockPostRepo{err: domain.ErrNotFound}, &mockUserRepo{}, mockTxManager{})
	_, err := svc.CreateComment(context.Background(), CreateInput{
		PostID: uuid.New(), UserID: uuid.New(), Comment: "nice",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateComment_MissingAuthor(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &mockCommentRepo{}, &mockPostRepo{}, &mockUserRepo{err: domain.ErrNotFound}, mockTxManager{})
	_, err := svc.CreateComment(context.Background(), CreateInput{
		PostID: uuid.New(), UserID: uuid.New(), Comment: "nice",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLikeComment(t *testing.T) {
	t.Parallel()

	c := &domain.Comment{Comment: "nice", LikeCount: 2}
	c.ID = uuid.New()
	repo := &mockCommentRepo{
		LockByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) { return c, nil },
	}

	got, err := NewService(slog.Default(), repo, &mockPostRepo{}, &mockUserRepo{}, mockTxManager{}).
		LikeComment(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.LikeCount)
}

func TestUpdateComment_RequiresText(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &mockCommentRepo{}, &mockPostRepo{}, &mockUserRepo{}, mockTxManager{})
	_, err := svc.UpdateComment(context.Background(), UpdateInput{ID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
