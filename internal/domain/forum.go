package domain

import "github.com/google/uuid"

// MaxForumNameLength bounds Forum.ForumName.
const MaxForumNameLength = 100

// Forum is a discussion space users can join.
type Forum struct {
	Base
	ForumName   string  `db:"forum_name"  json:"forum_name"`
	Description *string `db:"description" json:"description"`
	ImageURL    *string `db:"image_url"   json:"image_url"`
}

// ForumMember links a user to a forum. The (ForumID, UserID) pair is unique.
type ForumMember struct {
	Identity
	ForumID uuid.UUID `db:"forum_id" json:"forum_id"`
	UserID  uuid.UUID `db:"user_id"  json:"user_id"`
}

// ForumMessage is a message posted to a forum. Messages are never soft-deleted.
type ForumMessage struct {
	Identity
	Timestamps
	ForumID  uuid.UUID `db:"forum_id"  json:"forum_id"`
	UserID   uuid.UUID `db:"user_id"   json:"user_id"`
	Message  string    `db:"message"   json:"message"`
	ImageURL *string   `db:"image_url" json:"image_url"`
}
