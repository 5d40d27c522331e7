package dto

import (
	"time"

	"github.com/danevairena/SocialMediaBackend/pkg/dto"
)

type CreateNotificationRequest struct {
	ReceiverID uint   `json:"receiverId" binding:"required"`
	SenderID   *uint  `json:"senderId"`
	Type       string `json:"type" binding:"required"`
	PostID     *uint  `json:"postId"`
}

type CreatedNotificationResponse struct {
	ID         uint      `json:"id"`
	ReceiverID uint      `json:"receiverId"`
	SenderID   *uint     `json:"senderId"`
	Type       string    `json:"type"`
	PostID     *uint     `json:"postId"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

type NotificationResponse struct {
	ID        uint             `json:"id"`
	Type      string           `json:"type"`
	Message   string           `json:"message"`
	PostID    *uint            `json:"postId"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
	FromUser  *dto.UserSummary `json:"fromUser"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
