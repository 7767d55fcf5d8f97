package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/skillsphere-app/backend/internal/models"
	"github.com/skillsphere-app/backend/internal/repositories"
	"gorm.io/gorm"
)

const (
	likeCountKeyPrefix = "post:likes:"
	likeCountTTL       = 5 * time.Minute
	notifyTimeout      = 5 * time.Second
)

// EngagementService orchestrates like and comment actions on posts and
// fans out notifications to post owners. It holds no durable state of its
// own; all writes go through the repositories.
type EngagementService struct {
	likeRepository         repositories.LikeRepository
	commentRepository      repositories.CommentRepository
	notificationRepository repositories.NotificationRepository
	postOwner              repositories.PostOwnerLookup
	redisClient            *redis.Client // optional like-count cache, nil disables it
	logger                 *logrus.Logger
}

// NewEngagementService creates a new EngagementService. redisClient may be
// nil, in which case like counts always hit the store.
func NewEngagementService(
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	notificationRepo repositories.NotificationRepository,
	postOwner repositories.PostOwnerLookup,
	redisClient *redis.Client,
	logger *logrus.Logger,
) *EngagementService {
	return &EngagementService{
		likeRepository:         likeRepo,
		commentRepository:      commentRepo,
		notificationRepository: notificationRepo,
		postOwner:              postOwner,
		redisClient:            redisClient,
		logger:                 logger,
	}
}

// ToggleLike flips the actor's like state on a post and reports the new
// state. A fresh like notifies the post owner; a retraction is silent.
// The conditional insert is the serialization point for concurrent
// toggles on the same (post, actor) pair: the store's unique index
// guarantees at most one active like regardless of interleaving.
func (s *EngagementService) ToggleLike(ctx context.Context, postID, actorID, actorName string) (bool, error) {
	like := &models.Like{
		PostID:    postID,
		UserID:    actorID,
		Username:  actorName,
		CreatedAt: time.Now(),
	}

	inserted, err := s.likeRepository.CreateLike(ctx, like)
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	if !inserted {
		// An active like already existed: this toggle retracts it.
		if _, err := s.likeRepository.DeleteLike(ctx, postID, actorID); err != nil {
			return false, fmt.Errorf("retract like: %w", err)
		}
		s.invalidateLikeCount(postID)
		return false, nil
	}

	s.invalidateLikeCount(postID)
	s.notifyPostOwner(ctx, postID, actorID, models.NotificationTypeLike,
		fmt.Sprintf("%s liked your post", actorName))
	return true, nil
}

// AddComment persists a comment with trimmed content and notifies the
// post owner. The returned record carries the assigned ID for client-side
// correlation.
func (s *EngagementService) AddComment(ctx context.Context, postID, actorID, actorName, content string) (*models.Comment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyComment
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   actorID,
		Username: actorName,
		Content:  trimmed,
	}
	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.notifyPostOwner(ctx, postID, actorID, models.NotificationTypeComment,
		fmt.Sprintf("%s commented: %s", actorName, trimmed))
	return comment, nil
}

// UpdateComment replaces the comment's text. Only the author may edit,
// and edits are silent: no notification is emitted.
func (s *EngagementService) UpdateComment(ctx context.Context, commentID uint, actorID, newContent string) error {
	trimmed := strings.TrimSpace(newContent)
	if trimmed == "" {
		return ErrEmptyComment
	}

	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("update comment: %w", err)
	}
	if comment.UserID != actorID {
		return ErrNotCommentOwner
	}

	comment.Content = trimmed
	if err := s.commentRepository.UpdateComment(ctx, comment); err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// DeleteComment removes the comment permanently. Only the author may
// delete. Notifications already sent for the comment are left in place;
// they are an activity log, not a live mirror of comment state.
func (s *EngagementService) DeleteComment(ctx context.Context, commentID uint, actorID string) error {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	if comment.UserID != actorID {
		return ErrNotCommentOwner
	}

	if err := s.commentRepository.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// GetLikeCount returns the number of active likes on a post, reading
// through the Redis cache when one is configured. Cache failures degrade
// to a store count.
func (s *EngagementService) GetLikeCount(ctx context.Context, postID string) (int64, error) {
	if s.redisClient != nil {
		val, err := s.redisClient.Get(ctx, likeCountKeyPrefix+postID).Result()
		if err == nil {
			if count, parseErr := strconv.ParseInt(val, 10, 64); parseErr == nil {
				return count, nil
			}
		} else if err != redis.Nil {
			s.logger.WithError(err).Warn("like count cache read failed")
		}
	}

	count, err := s.likeRepository.GetLikesCountByPostID(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("get like count: %w", err)
	}

	if s.redisClient != nil {
		if err := s.redisClient.Set(ctx, likeCountKeyPrefix+postID, count, likeCountTTL).Err(); err != nil {
			s.logger.WithError(err).Warn("like count cache write failed")
		}
	}
	return count, nil
}

// GetComments returns all comments on a post, oldest first.
func (s *EngagementService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := s.commentRepository.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}
	return comments, nil
}

// GetUserLikeStatus reports whether the actor currently likes the post.
func (s *EngagementService) GetUserLikeStatus(ctx context.Context, postID, actorID string) (bool, error) {
	liked, err := s.likeRepository.HasUserLikedPost(ctx, postID, actorID)
	if err != nil {
		return false, fmt.Errorf("get like status: %w", err)
	}
	return liked, nil
}

// notifyPostOwner appends a notification for the post owner. The primary
// engagement write has already committed when this runs, so every failure
// here is logged and swallowed: the activity feed is best-effort, the
// social action is not. Runs detached from the caller's deadline so a
// cancellation arriving after the primary write cannot abort it midway.
func (s *EngagementService) notifyPostOwner(ctx context.Context, postID, actorID, notifType, content string) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	ownerID, err := s.postOwner.GetPostOwner(nctx, postID)
	if err != nil {
		s.logger.WithError(err).WithField("post_id", postID).Warn("post owner lookup failed, skipping notification")
		return
	}
	if ownerID == "" || ownerID == actorID {
		// Unknown post or self-action: nothing to notify.
		return
	}

	notification := &models.Notification{
		UserID:    ownerID,
		ActorID:   actorID,
		PostID:    postID,
		Type:      notifType,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.notificationRepository.CreateNotification(nctx, notification); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"post_id":   postID,
			"recipient": ownerID,
			"type":      notifType,
		}).Error("failed to create notification")
	}
}

// invalidateLikeCount drops the cached count for a post after a toggle.
func (s *EngagementService) invalidateLikeCount(postID string) {
	if s.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.redisClient.Del(ctx, likeCountKeyPrefix+postID).Err(); err != nil {
		s.logger.WithError(err).WithField("post_id", postID).Warn("like count cache invalidation failed")
	}
}
