package entity

import (
	"time"
)

// NotificationType is stored verbatim. Only the three known kinds render a message;
// anything else is kept as written and renders empty.
type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
)

func (t NotificationType) Known() bool {
	switch t {
	case NotificationLike, NotificationComment, NotificationFollow:
		return true
	}
	return false
}

// Message is the read-time rendering of the notification kind.
func (t NotificationType) Message() string {
	switch t {
	case NotificationLike:
		return "liked your post"
	case NotificationComment:
		return "commented on your post"
	case NotificationFollow:
		return "started following you"
	default:
		return ""
	}
}

type Notification struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	ReceiverID uint             `gorm:"not null;index:idx_notifications_receiver,priority:1" json:"receiver_id"`
	SenderID   *uint            `json:"sender_id"`
	Type       NotificationType `gorm:"size:50;not null" json:"type"`
	PostID     *uint            `json:"post_id"`
	IsRead     bool             `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time        `gorm:"autoCreateTime;index:idx_notifications_receiver,priority:2" json:"created_at"`
}
