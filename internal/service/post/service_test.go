package post

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

type mockPostRepo struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	LockByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListActiveFunc func(ctx context.Context) ([]*domain.Post, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error)
	SaveFunc       func(ctx context.Context, p *domain.Post) error
	UpdateFunc     func(ctx context.Context, p *domain.Post, patch domain.Patcher) error
	DeleteFunc     func(ctx context.Context, p *domain.Post, hard bool) error
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockPostRepo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.LockByIDFunc != nil {
		return m.LockByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockPostRepo) ListActive(ctx context.Context) ([]*domain.Post, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []*domain.Post{}, nil
}

func (m *mockPostRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []*domain.Post{}, nil
}

func (m *mockPostRepo) Save(ctx context.Context, p *domain.Post) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return p.AssignID()
}

// Update applies like_count so tests can observe the counter.
func (m *mockPostRepo) Update(ctx context.Context, p *domain.Post, patch domain.Patcher) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p, patch)
	}
	if v, ok := patch.Patch()["like_count"].(int); ok {
		p.LikeCount = v
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, p *domain.Post, hard bool) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, p, hard)
	}
	return nil
}

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	u := &domain.User{}
	u.ID = id
	return u, nil
}

type mockTxManager struct{}

func (mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(posts *mockPostRepo, users *mockUserRepo) *Service {
	return NewService(slog.Default(), posts, users, mockTxManager{})
}

func storedPost(owner uuid.UUID, likes int) *domain.Post {
	p := &domain.Post{UserID: owner, Description: "hello", LikeCount: likes}
	p.ID = uuid.New()
	return p
}

func TestCreatePost_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	p, err := newTestService(&mockPostRepo{}, &mockUserRepo{}).CreatePost(context.Background(), CreateInput{
		UserID:      userID,
		Description: "  first post ",
	})
	require.NoError(t, err)
	assert.Equal(t, "first post", p.Description)
	assert.Equal(t, userID, p.UserID)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	_, err := newTestService(&mockPostRepo{}, users).CreatePost(context.Background(), CreateInput{
		UserID: uuid.New(), Description: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePost_MissingDescription(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&mockPostRepo{}, &mockUserRepo{}).CreatePost(context.Background(), CreateInput{
		UserID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdatePost_OnlyAuthor(t *testing.T) {
	t.Parallel()

	p := storedPost(uuid.New(), 0)
	posts := &mockPostRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) { return p, nil },
	}
	svc := newTestService(posts, &mockUserRepo{})
	desc := "edited"

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, err := svc.UpdatePost(ctx, UpdateInput{ID: p.ID, Description: &desc})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	ctx = ctxutil.WithUserID(context.Background(), p.UserID)
	_, err = svc.UpdatePost(ctx, UpdateInput{ID: p.ID, Description: &desc})
	assert.NoError(t, err)
}

func TestUpdatePost_ClearsHashtag(t *testing.T) {
	t.Parallel()

	empty := ""
	patch := UpdateInput{Hashtag: &empty}.Patch()
	v, ok := patch["hashtag"]
	require.True(t, ok)
	assert.Nil(t, v.(*string))
}

func TestLikeAndUnlike(t *testing.T) {
	t.Parallel()

	p := storedPost(uuid.New(), 0)
	posts := &mockPostRepo{
		LockByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) { return p, nil },
	}
	svc := newTestService(posts, &mockUserRepo{})

	got, err := svc.LikePost(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)

	got, err = svc.UnlikePost(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikeCount)

	got, err = svc.UnlikePost(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikeCount, "likes never drop below zero")
}

func TestDeletePost_Soft(t *testing.T) {
	t.Parallel()

	p := storedPost(uuid.New(), 0)
	var hard *bool
	posts := &mockPostRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) { return p, nil },
		DeleteFunc: func(ctx context.Context, got *domain.Post, h bool) error {
			hard = &h
			return nil
		},
	}

	require.NoError(t, newTestService(posts, &mockUserRepo{}).DeletePost(context.Background(), p.ID))
	require.NotNil(t, hard)
	assert.False(t, *hard)
}
