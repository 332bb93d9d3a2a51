// Package forum implements persistence for forums, their members and their
// messages.
package forum

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/base"
	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Repo provides forum persistence.
type Repo struct {
	*base.Base[domain.Forum]
}

// New creates a forum repository.
func New(db postgres.Querier, opts ...base.Option) *Repo {
	return &Repo{
		Base: base.MustNew[domain.Forum](db, base.Config{Table: "forums", Entity: "forum"}, opts...),
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Forum, error) {
	return r.GetActive(ctx, id)
}

// ListActive returns active forums ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]*domain.Forum, error) {
	return r.Active().OrderBy("forum_name", "id").All(ctx)
}

// MemberRepo provides forum membership persistence.
type MemberRepo struct {
	*base.Base[domain.ForumMember]
}

// NewMembers creates a membership repository.
func NewMembers(db postgres.Querier, opts ...base.Option) *MemberRepo {
	return &MemberRepo{
		Base: base.MustNew[domain.ForumMember](db, base.Config{Table: "forum_members", Entity: "forum member"}, opts...),
	}
}

// Add inserts a membership. A second membership for the same pair fails with
// domain.ErrAlreadyExists through forum_members_forum_user_key.
func (r *MemberRepo) Add(ctx context.Context, m *domain.ForumMember) error {
	return r.Insert(ctx, m)
}

// Find returns the membership of userID in forumID, or nil.
func (r *MemberRepo) Find(ctx context.Context, forumID, userID uuid.UUID) (*domain.ForumMember, error) {
	return r.Get(sq.Eq{"forum_id": forumID, "user_id": userID}).OneOrNone(ctx)
}

// ListByForum returns the members of a forum.
func (r *MemberRepo) ListByForum(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMember, error) {
	return r.Get(sq.Eq{"forum_id": forumID}).OrderBy("id").All(ctx)
}

// MessageRepo provides forum message persistence.
type MessageRepo struct {
	*base.Base[domain.ForumMessage]
}

// NewMessages creates a forum message repository.
func NewMessages(db postgres.Querier, opts ...base.Option) *MessageRepo {
	return &MessageRepo{
		Base: base.MustNew[domain.ForumMessage](db, base.Config{Table: "forum_messages", Entity: "forum message"}, opts...),
	}
}

// ListByForum returns the messages of a forum, oldest first.
func (r *MessageRepo) ListByForum(ctx context.Context, forumID uuid.UUID) ([]*domain.ForumMessage, error) {
	return r.Get(sq.Eq{"forum_id": forumID}).OrderBy("created_at", "id").All(ctx)
}
