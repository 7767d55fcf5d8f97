package handlers

import (
	"context"
	"sort"

	"github.com/skillsphere-app/backend/internal/models"
	"gorm.io/gorm"
)

// Minimal in-memory fakes for wiring real services under httptest.

type memLikeRepo struct {
	likes map[string]models.Like // postID + "|" + userID
}

func newMemLikeRepo() *memLikeRepo { return &memLikeRepo{likes: make(map[string]models.Like)} }

func (m *memLikeRepo) CreateLike(_ context.Context, like *models.Like) (bool, error) {
	key := like.PostID + "|" + like.UserID
	if _, ok := m.likes[key]; ok {
		return false, nil
	}
	m.likes[key] = *like
	return true, nil
}

func (m *memLikeRepo) DeleteLike(_ context.Context, postID, userID string) (bool, error) {
	key := postID + "|" + userID
	if _, ok := m.likes[key]; !ok {
		return false, nil
	}
	delete(m.likes, key)
	return true, nil
}

func (m *memLikeRepo) GetLikesCountByPostID(_ context.Context, postID string) (int64, error) {
	var count int64
	for _, l := range m.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (m *memLikeRepo) HasUserLikedPost(_ context.Context, postID, userID string) (bool, error) {
	_, ok := m.likes[postID+"|"+userID]
	return ok, nil
}

type memCommentRepo struct {
	comments map[uint]models.Comment
	nextID   uint
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[uint]models.Comment), nextID: 1}
}

func (m *memCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = *comment
	return nil
}

func (m *memCommentRepo) GetCommentByID(_ context.Context, id uint) (*models.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := comment
	return &c, nil
}

func (m *memCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCommentRepo) UpdateComment(_ context.Context, comment *models.Comment) error {
	m.comments[comment.ID] = *comment
	return nil
}

func (m *memCommentRepo) DeleteComment(_ context.Context, id uint) error {
	delete(m.comments, id)
	return nil
}

type memNotificationRepo struct {
	notifications map[uint]models.Notification
	nextID        uint
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{notifications: make(map[uint]models.Notification), nextID: 1}
}

func (m *memNotificationRepo) CreateNotification(_ context.Context, n *models.Notification) error {
	n.ID = m.nextID
	m.nextID++
	m.notifications[n.ID] = *n
	return nil
}

func (m *memNotificationRepo) GetByID(_ context.Context, id uint) (*models.Notification, error) {
	n, ok := m.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := n
	return &out, nil
}

func (m *memNotificationRepo) list(recipientID string, unreadOnly bool) []models.Notification {
	var out []models.Notification
	for _, n := range m.notifications {
		if n.UserID != recipientID || (unreadOnly && n.IsRead) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memNotificationRepo) GetByRecipientID(_ context.Context, recipientID string) ([]models.Notification, error) {
	return m.list(recipientID, false), nil
}

func (m *memNotificationRepo) GetUnreadByRecipientID(_ context.Context, recipientID string) ([]models.Notification, error) {
	return m.list(recipientID, true), nil
}

func (m *memNotificationRepo) MarkAsRead(_ context.Context, id uint) error {
	n, ok := m.notifications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.IsRead = true
	m.notifications[id] = n
	return nil
}

func (m *memNotificationRepo) MarkAllAsRead(_ context.Context, recipientID string) error {
	for id, n := range m.notifications {
		if n.UserID == recipientID {
			n.IsRead = true
			m.notifications[id] = n
		}
	}
	return nil
}

func (m *memNotificationRepo) DeleteByPostID(_ context.Context, postID string) error {
	for id, n := range m.notifications {
		if n.PostID == postID {
			delete(m.notifications, id)
		}
	}
	return nil
}

type memPostOwners map[string]string

func (m memPostOwners) GetPostOwner(_ context.Context, postID string) (string, error) {
	return m[postID], nil
}
