package repository

import (
	"context"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByReceiver(ctx context.Context, receiverID uint) ([]entity.Notification, error)
	MarkAsRead(ctx context.Context, receiverID, id uint) (int64, error)
	MarkAllAsRead(ctx context.Context, receiverID uint) (int64, error)
	CountUnread(ctx context.Context, receiverID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// ListByReceiver returns newest first; id breaks ties between rows stored in the same instant.
func (r *notificationRepository) ListByReceiver(ctx context.Context, receiverID uint) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := r.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at desc").
		Order("id desc").
		Find(&notifications).Error
	return notifications, err
}

// MarkAsRead reports how many rows matched, so zero means the notification is not the receiver's.
func (r *notificationRepository) MarkAsRead(ctx context.Context, receiverID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, receiverID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, receiverID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}
