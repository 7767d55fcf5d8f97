package models

import "time"

// Like represents an active like on a post. A like is deleted when
// retracted, never flagged inactive, so existence of a row means the
// user currently likes the post.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_like_post_user"` // ID of the liked post (MongoDB ObjectID as string)
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_like_post_user"`       // ID of the user who liked the post
	Username  string    `json:"username"`                                            // display name snapshot at like time
	CreatedAt time.Time `json:"created_at"`
}
