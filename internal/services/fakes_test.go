package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/skillsphere-app/backend/internal/models"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the store-level contracts the
// Postgres implementations provide: conditional insert for likes,
// record-not-found via gorm.ErrRecordNotFound, scoped bulk updates.

type fakeLikeRepository struct {
	mu    sync.Mutex
	likes map[string]models.Like // key: postID + "|" + userID
}

func newFakeLikeRepository() *fakeLikeRepository {
	return &fakeLikeRepository{likes: make(map[string]models.Like)}
}

func likeKey(postID, userID string) string { return postID + "|" + userID }

func (f *fakeLikeRepository) CreateLike(_ context.Context, like *models.Like) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey(like.PostID, like.UserID)
	if _, ok := f.likes[key]; ok {
		return false, nil
	}
	f.likes[key] = *like
	return true, nil
}

func (f *fakeLikeRepository) DeleteLike(_ context.Context, postID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey(postID, userID)
	if _, ok := f.likes[key]; !ok {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

func (f *fakeLikeRepository) GetLikesCountByPostID(_ context.Context, postID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, l := range f.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepository) HasUserLikedPost(_ context.Context, postID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.likes[likeKey(postID, userID)]
	return ok, nil
}

type fakeCommentRepository struct {
	mu       sync.Mutex
	comments map[uint]models.Comment
	nextID   uint
}

func newFakeCommentRepository() *fakeCommentRepository {
	return &fakeCommentRepository{comments: make(map[uint]models.Comment), nextID: 1}
}

func (f *fakeCommentRepository) CreateComment(_ context.Context, comment *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment.ID = f.nextID
	f.nextID++
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeCommentRepository) GetCommentByID(_ context.Context, id uint) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := comment
	return &c, nil
}

func (f *fakeCommentRepository) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCommentRepository) UpdateComment(_ context.Context, comment *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeCommentRepository) DeleteComment(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, id)
	return nil
}

type fakeNotificationRepository struct {
	mu            sync.Mutex
	notifications map[uint]models.Notification
	nextID        uint
	failCreate    bool
}

func newFakeNotificationRepository() *fakeNotificationRepository {
	return &fakeNotificationRepository{notifications: make(map[uint]models.Notification), nextID: 1}
}

func (f *fakeNotificationRepository) CreateNotification(_ context.Context, n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("notification store unavailable")
	}
	n.ID = f.nextID
	f.nextID++
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	f.notifications[n.ID] = *n
	return nil
}

func (f *fakeNotificationRepository) GetByID(_ context.Context, id uint) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := n
	return &out, nil
}

func (f *fakeNotificationRepository) byRecipient(recipientID string, unreadOnly bool) []models.Notification {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeNotificationRepository) GetByRecipientID(_ context.Context, recipientID string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byRecipient(recipientID, false), nil
}

func (f *fakeNotificationRepository) GetUnreadByRecipientID(_ context.Context, recipientID string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byRecipient(recipientID, true), nil
}

func (f *fakeNotificationRepository) MarkAsRead(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.IsRead = true
	f.notifications[id] = n
	return nil
}

func (f *fakeNotificationRepository) MarkAllAsRead(_ context.Context, recipientID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, n := range f.notifications {
		if n.UserID == recipientID && !n.IsRead {
			n.IsRead = true
			f.notifications[id] = n
		}
	}
	return nil
}

func (f *fakeNotificationRepository) DeleteByPostID(_ context.Context, postID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, n := range f.notifications {
		if n.PostID == postID {
			delete(f.notifications, id)
		}
	}
	return nil
}

type fakePostOwnerLookup struct {
	owners map[string]string // postID -> owner userID
	err    error
}

func (f *fakePostOwnerLookup) GetPostOwner(_ context.Context, postID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.owners[postID], nil
}
