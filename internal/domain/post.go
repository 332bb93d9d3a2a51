package domain

import "github.com/google/uuid"

// Post is a user's publication in the feed.
type Post struct {
	Base
	UserID      uuid.UUID `db:"user_id"     json:"user_id"`
	Description string    `db:"description" json:"description"`
	Hashtag     *string   `db:"hashtag"     json:"hashtag"`
	Photo       *string   `db:"photo"       json:"photo"`
	LikeCount   int       `db:"like_count"  json:"like_count"`
}

// Comment is a reply attached to a post.
type Comment struct {
	Base
	PostID    uuid.UUID `db:"post_id"    json:"post_id"`
	UserID    uuid.UUID `db:"user_id"    json:"user_id"`
	Comment   string    `db:"comment"    json:"comment"`
	LikeCount int       `db:"like_count" json:"like_count"`
}
