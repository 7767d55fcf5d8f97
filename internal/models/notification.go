package models

import "time"

// Notification types emitted by the engagement service.
const (
	NotificationTypeLike    = "LIKE"
	NotificationTypeComment = "COMMENT"
)

// Notification represents an activity notification addressed to a post
// owner. Rows are append-only from this subsystem's point of view; the
// only mutation is the is_read flip.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"` // recipient of the notification
	ActorID   string    `json:"actor_id"`             // user who performed the action
	PostID    string    `json:"post_id"`
	Type      string    `json:"type" gorm:"size:30"` // LIKE or COMMENT
	Content   string    `json:"content"`             // rendered message, embeds the actor's display name
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
