package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillsphere-app/backend/internal/models"
	"github.com/skillsphere-app/backend/internal/repositories"
	"gorm.io/gorm"
)

// NotificationService exposes a recipient's notifications and owns the
// read-state transitions.
type NotificationService struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepository: notificationRepo}
}

// ListNotifications returns all notifications for the recipient, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, recipientID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepository.GetByRecipientID(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// ListUnread returns the recipient's unread notifications, newest first.
func (s *NotificationService) ListUnread(ctx context.Context, recipientID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepository.GetUnreadByRecipientID(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips a notification to read. Only the addressed recipient may
// do so. Marking an already-read notification succeeds silently.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID uint, recipientID string) error {
	notification, err := s.notificationRepository.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("mark notification read: %w", err)
	}
	if notification.UserID != recipientID {
		return ErrNotNotificationOwner
	}
	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepository.MarkAsRead(ctx, notificationID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead flips every unread notification for the recipient. A
// failure partway through may leave some rows read and some not; the
// operation is idempotent, so callers simply retry.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	if err := s.notificationRepository.MarkAllAsRead(ctx, recipientID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
