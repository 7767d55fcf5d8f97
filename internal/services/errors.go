package services

import "errors"

// Caller-facing errors. Handlers map these to HTTP statuses with
// errors.Is; anything else coming out of a service is a store failure and
// surfaces as a 500 for the caller to retry.
var (
	// ErrEmptyComment is returned when comment content is empty after trimming.
	ErrEmptyComment = errors.New("comment content cannot be empty")

	// ErrCommentNotFound is returned when no comment exists with the given ID.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrNotCommentOwner is returned when the actor does not own the comment.
	ErrNotCommentOwner = errors.New("not authorized to modify this comment")

	// ErrNotificationNotFound is returned when no notification exists with the given ID.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrNotNotificationOwner is returned when the notification is addressed to someone else.
	ErrNotNotificationOwner = errors.New("not authorized to modify this notification")
)
