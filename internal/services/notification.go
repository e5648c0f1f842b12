package services

import (
	"context"

	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/pkg/logger"
	"gorm.io/gorm"
)

type NotificationService struct {
	db    *gorm.DB
	queue TaskQueue
}

func NewNotificationService(db *gorm.DB, queue TaskQueue) *NotificationService {
	return &NotificationService{db: db, queue: queue}
}

// CreateTx stores a notification inside the caller's transaction. It does
// not schedule delivery: the row is not visible to the delivery worker
// until the transaction commits, so the caller dispatches afterwards.
func (s *NotificationService) CreateTx(tx *gorm.DB, n *models.Notification) error {
	if n == nil {
		return nil
	}
	return tx.Create(n).Error
}

// Dispatch schedules delivery of a committed notification. Best effort: a
// failed enqueue is logged, the notification stays readable through the
// list endpoint either way.
func (s *NotificationService) Dispatch(n *models.Notification) {
	if n == nil || s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(&DeliveryTask{NotificationID: n.ID, UserID: n.UserID}); err != nil {
		logger.Error().Err(err).Str("notification_id", n.ID).Msg("delivery enqueue failed")
	}
}

// Create stores and schedules a notification outside any transaction.
func (s *NotificationService) Create(n *models.Notification) error {
	if err := s.CreateTx(s.db, n); err != nil {
		return err
	}
	s.Dispatch(n)
	return nil
}

// Deliver loads a stored notification and pushes it to the recipient's
// open event streams. Used as the task queue processor.
func (s *NotificationService) Deliver(ctx context.Context, task *DeliveryTask) error {
	var n models.Notification
	if err := s.db.WithContext(ctx).First(&n, "id = ?", task.NotificationID).Error; err != nil {
		return err
	}
	PublishNotification(&n)
	return nil
}

// ListLatest returns the user's most recent notifications.
func (s *NotificationService) ListLatest(userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// UnreadCount returns the number of unread notifications for the user.
func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks one of the user's notifications as read. Marking an
// already-read notification is a no-op, not an error. Existence is checked
// with a read rather than inferred from affected rows, which MySQL reports
// as zero for updates that change nothing.
func (s *NotificationService) MarkRead(id, userID string) error {
	var n models.Notification
	if err := s.db.Select("id").
		First(&n, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Notification{}).
		Where("id = ?", n.ID).
		Update("is_read", true).Error
}

// MarkAllRead marks every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(userID string) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
