package dto

import "time"

type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required,max=5000"`
}

// MessageResponse carries the sender's profile only in history listings.
type MessageResponse struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"senderId"`
	ReceiverID uint      `json:"receiverId"`
	Content    string    `json:"content"`
	Seen       bool      `json:"seen"`
	CreatedAt  time.Time `json:"createdAt"`
	SenderName string    `json:"senderName,omitempty"`
	SenderPic  string    `json:"senderPic,omitempty"`
}

// ConversationSummary is derived from the message log on every read.
type ConversationSummary struct {
	UserID        uint      `json:"userId"`
	Username      string    `json:"username"`
	Avatar        string    `json:"avatar"`
	LastMessage   string    `json:"lastMessage"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	UnreadCount   int64     `json:"unreadCount"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkSeenResponse struct {
	Updated int64 `json:"updated"`
}
